// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package garb

import "github.com/imazen/garb/internal/swizzle"

// RGBAToRGB converts 4-byte pixels to 3-byte pixels by dropping byte 3
// (alpha), keeping channel order.
func RGBAToRGB(src, dst []byte) error {
	if err := checkCopy(len(src), 4, len(dst), 3); err != nil {
		return err
	}
	swizzle.Active().Strip4To3(dst, src)
	return nil
}

// BGRAToRGB converts 4-byte pixels to 3-byte pixels, dropping alpha and
// reversing channels 0 and 2 (BGRA→RGB, equivalently RGBA→BGR).
func BGRAToRGB(src, dst []byte) error {
	if err := checkCopy(len(src), 4, len(dst), 3); err != nil {
		return err
	}
	swizzle.Active().Strip4Swap3(dst, src)
	return nil
}

// BGRAToBGR drops alpha keeping channel order: the same kernel as
// RGBAToRGB.
func BGRAToBGR(src, dst []byte) error { return RGBAToRGB(src, dst) }

// RGBAToBGR drops alpha and reverses channels: the same kernel as
// BGRAToRGB.
func RGBAToBGR(src, dst []byte) error { return BGRAToRGB(src, dst) }

// RGBAToRGBStrided converts a strided 4 bpp image to a strided 3 bpp
// image, dropping alpha.  Padding bytes between rows are never read or
// written.
func RGBAToRGBStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Strip4To3, src, dst, width, height, srcStride, dstStride, 4, 3)
}

// BGRAToRGBStrided converts a strided 4 bpp image to a strided 3 bpp
// image, dropping alpha and reversing channels 0 and 2.
func BGRAToRGBStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Strip4Swap3, src, dst, width, height, srcStride, dstStride, 4, 3)
}

// BGRAToBGRStrided is RGBAToRGBStrided applied to BGRA input.
func BGRAToBGRStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBAToRGBStrided(src, dst, width, height, srcStride, dstStride)
}

// RGBAToBGRStrided is BGRAToRGBStrided applied to RGBA input.
func RGBAToBGRStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return BGRAToRGBStrided(src, dst, width, height, srcStride, dstStride)
}
