// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package garb

import "github.com/imazen/garb/internal/swizzle"

// RGBAToBGRAInPlace swaps channels 0 and 2 of every 4-byte pixel in buf
// (RGBA↔BGRA).
func RGBAToBGRAInPlace(buf []byte) error {
	if err := checkInPlace(len(buf), 4); err != nil {
		return err
	}
	swizzle.Active().Swap4(buf, buf)
	return nil
}

// RGBAToBGRA copies 4-byte pixels from src to dst, swapping channels 0
// and 2 (RGBA→BGRA or BGRA→RGBA).
func RGBAToBGRA(src, dst []byte) error {
	if err := checkCopy(len(src), 4, len(dst), 4); err != nil {
		return err
	}
	swizzle.Active().Swap4(dst, src)
	return nil
}

// BGRAToRGBAInPlace is RGBAToBGRAInPlace under its inverse name; the
// 4-byte swap is its own inverse.
func BGRAToRGBAInPlace(buf []byte) error { return RGBAToBGRAInPlace(buf) }

// BGRAToRGBA is RGBAToBGRA under its inverse name.
func BGRAToRGBA(src, dst []byte) error { return RGBAToBGRA(src, dst) }

// RGBToBGRInPlace swaps channels 0 and 2 of every 3-byte pixel in buf
// (RGB↔BGR).
func RGBToBGRInPlace(buf []byte) error {
	if err := checkInPlace(len(buf), 3); err != nil {
		return err
	}
	swizzle.Active().Swap3(buf, buf)
	return nil
}

// RGBToBGR copies 3-byte pixels from src to dst, swapping channels 0
// and 2 (RGB→BGR or BGR→RGB).
func RGBToBGR(src, dst []byte) error {
	if err := checkCopy(len(src), 3, len(dst), 3); err != nil {
		return err
	}
	swizzle.Active().Swap3(dst, src)
	return nil
}

// BGRToRGBInPlace is RGBToBGRInPlace under its inverse name.
func BGRToRGBInPlace(buf []byte) error { return RGBToBGRInPlace(buf) }

// BGRToRGB is RGBToBGR under its inverse name.
func BGRToRGB(src, dst []byte) error { return RGBToBGR(src, dst) }

// RGBAToBGRAInPlaceStrided swaps channels 0 and 2 of a strided 4 bpp
// image in place.  Padding bytes between rows are never read or written.
func RGBAToBGRAInPlaceStrided(buf []byte, width, height, stride int) error {
	return stridedInPlace(swizzle.Active().Swap4, buf, width, height, stride, 4)
}

// RGBAToBGRAStrided copies a strided 4 bpp image, swapping channels 0
// and 2.  Padding bytes between rows are never read or written.
func RGBAToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Swap4, src, dst, width, height, srcStride, dstStride, 4, 4)
}

// BGRAToRGBAInPlaceStrided is RGBAToBGRAInPlaceStrided under its inverse
// name.
func BGRAToRGBAInPlaceStrided(buf []byte, width, height, stride int) error {
	return RGBAToBGRAInPlaceStrided(buf, width, height, stride)
}

// BGRAToRGBAStrided is RGBAToBGRAStrided under its inverse name.
func BGRAToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBAToBGRAStrided(src, dst, width, height, srcStride, dstStride)
}

// RGBToBGRInPlaceStrided swaps channels 0 and 2 of a strided 3 bpp image
// in place.
func RGBToBGRInPlaceStrided(buf []byte, width, height, stride int) error {
	return stridedInPlace(swizzle.Active().Swap3, buf, width, height, stride, 3)
}

// RGBToBGRStrided copies a strided 3 bpp image, swapping channels 0
// and 2.
func RGBToBGRStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Swap3, src, dst, width, height, srcStride, dstStride, 3, 3)
}

// BGRToRGBInPlaceStrided is RGBToBGRInPlaceStrided under its inverse
// name.
func BGRToRGBInPlaceStrided(buf []byte, width, height, stride int) error {
	return RGBToBGRInPlaceStrided(buf, width, height, stride)
}

// BGRToRGBStrided is RGBToBGRStrided under its inverse name.
func BGRToRGBStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBToBGRStrided(src, dst, width, height, srcStride, dstStride)
}
