// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package garb

import "github.com/imazen/garb/internal/swizzle"

// RGBToRGBA converts 3-byte pixels to 4-byte pixels, keeping channel
// order and setting alpha to 255.
func RGBToRGBA(src, dst []byte) error {
	if err := checkCopy(len(src), 3, len(dst), 4); err != nil {
		return err
	}
	swizzle.Active().Expand3To4(dst, src)
	return nil
}

// RGBToBGRA converts 3-byte pixels to 4-byte pixels, reversing channel
// order and setting alpha to 255.
func RGBToBGRA(src, dst []byte) error {
	if err := checkCopy(len(src), 3, len(dst), 4); err != nil {
		return err
	}
	swizzle.Active().Expand3Swap4(dst, src)
	return nil
}

// BGRToRGBA converts BGR pixels to RGBA: the same reverse-and-extend
// permutation as RGBToBGRA.
func BGRToRGBA(src, dst []byte) error { return RGBToBGRA(src, dst) }

// BGRToBGRA converts BGR pixels to BGRA: the same order-keeping
// extension as RGBToRGBA.
func BGRToBGRA(src, dst []byte) error { return RGBToRGBA(src, dst) }

// RGBToRGBAStrided converts a strided 3 bpp image to a strided 4 bpp
// image, alpha = 255.  Padding bytes between rows are never read or
// written.
func RGBToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Expand3To4, src, dst, width, height, srcStride, dstStride, 3, 4)
}

// RGBToBGRAStrided converts a strided 3 bpp image to a strided 4 bpp
// image with channels reversed, alpha = 255.
func RGBToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Expand3Swap4, src, dst, width, height, srcStride, dstStride, 3, 4)
}

// BGRToRGBAStrided is RGBToBGRAStrided applied to BGR input.
func BGRToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBToBGRAStrided(src, dst, width, height, srcStride, dstStride)
}

// BGRToBGRAStrided is RGBToRGBAStrided applied to BGR input.
func BGRToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBToRGBAStrided(src, dst, width, height, srcStride, dstStride)
}
