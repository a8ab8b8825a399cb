// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package garb

import "github.com/imazen/garb/internal/swizzle"

// FillAlphaRGBA sets byte 3 of every 4-byte pixel in buf to 255, leaving
// the colour channels untouched.  Works for any alpha-last layout
// (RGBA, BGRA).
func FillAlphaRGBA(buf []byte) error {
	if err := checkInPlace(len(buf), 4); err != nil {
		return err
	}
	swizzle.Active().FillAlpha4(buf)
	return nil
}

// FillAlphaBGRA is FillAlphaRGBA.
func FillAlphaBGRA(buf []byte) error { return FillAlphaRGBA(buf) }

// FillAlphaRGBAStrided sets byte 3 of every pixel of a strided 4 bpp
// image to 255.  Padding bytes between rows are never read or written.
func FillAlphaRGBAStrided(buf []byte, width, height, stride int) error {
	return stridedFill(swizzle.Active().FillAlpha4, buf, width, height, stride, 4)
}

// FillAlphaBGRAStrided is FillAlphaRGBAStrided.
func FillAlphaBGRAStrided(buf []byte, width, height, stride int) error {
	return FillAlphaRGBAStrided(buf, width, height, stride)
}
