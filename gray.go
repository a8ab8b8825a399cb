// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package garb

import "github.com/imazen/garb/internal/swizzle"

// GrayToRGBA converts 1-byte gray pixels to 4-byte pixels with
// R = G = B = gray and alpha = 255.  Because all three colour channels
// receive the same value the result is equally valid BGRA.
func GrayToRGBA(src, dst []byte) error {
	if err := checkCopy(len(src), 1, len(dst), 4); err != nil {
		return err
	}
	swizzle.Active().Gray1To4(dst, src)
	return nil
}

// GrayToBGRA is GrayToRGBA: gray broadcast is layout-agnostic.
func GrayToBGRA(src, dst []byte) error { return GrayToRGBA(src, dst) }

// GrayAlphaToRGBA converts (gray, alpha) pairs to 4-byte pixels with
// R = G = B = gray and the source alpha preserved.
func GrayAlphaToRGBA(src, dst []byte) error {
	if err := checkCopy(len(src), 2, len(dst), 4); err != nil {
		return err
	}
	swizzle.Active().Gray2To4(dst, src)
	return nil
}

// GrayAlphaToBGRA is GrayAlphaToRGBA: gray broadcast is layout-agnostic.
func GrayAlphaToBGRA(src, dst []byte) error { return GrayAlphaToRGBA(src, dst) }

// GrayToRGBAStrided converts a strided 1 bpp image to a strided 4 bpp
// image.  Padding bytes between rows are never read or written.
func GrayToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Gray1To4, src, dst, width, height, srcStride, dstStride, 1, 4)
}

// GrayToBGRAStrided is GrayToRGBAStrided.
func GrayToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return GrayToRGBAStrided(src, dst, width, height, srcStride, dstStride)
}

// GrayAlphaToRGBAStrided converts a strided 2 bpp gray+alpha image to a
// strided 4 bpp image.
func GrayAlphaToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return stridedCopy(swizzle.Active().Gray2To4, src, dst, width, height, srcStride, dstStride, 2, 4)
}

// GrayAlphaToBGRAStrided is GrayAlphaToRGBAStrided.
func GrayAlphaToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return GrayAlphaToRGBAStrided(src, dst, width, height, srcStride, dstStride)
}
