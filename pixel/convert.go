// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pixel

import (
	"github.com/imazen/garb"
	"github.com/imazen/garb/internal/swizzle"
)

// In-place swaps.  The returned slice is the input memory under the
// destination layout; the input slice must not be used afterwards.

// RGBAToBGRA swaps every pixel in place and returns px as []BGRA.
func RGBAToBGRA(px []RGBA) []BGRA {
	b := Bytes(px)
	swizzle.Active().Swap4(b, b)
	return reinterpret[BGRA](px)
}

// BGRAToRGBA swaps every pixel in place and returns px as []RGBA.
func BGRAToRGBA(px []BGRA) []RGBA {
	b := Bytes(px)
	swizzle.Active().Swap4(b, b)
	return reinterpret[RGBA](px)
}

// RGBToBGR swaps every pixel in place and returns px as []BGR.
func RGBToBGR(px []RGB) []BGR {
	b := Bytes(px)
	swizzle.Active().Swap3(b, b)
	return reinterpret[BGR](px)
}

// BGRToRGB swaps every pixel in place and returns px as []RGB.
func BGRToRGB(px []BGR) []RGB {
	b := Bytes(px)
	swizzle.Active().Swap3(b, b)
	return reinterpret[RGB](px)
}

// FillAlpha sets A = 255 on every pixel.
func FillAlpha(px []RGBA) {
	swizzle.Active().FillAlpha4(Bytes(px))
}

// FillAlphaBGRA sets A = 255 on every pixel.
func FillAlphaBGRA(px []BGRA) {
	swizzle.Active().FillAlpha4(Bytes(px))
}

// Copy conversions.  Unlike the byte-level API there is only one way for
// these to fail: differing pixel counts.

func checkLen(srcLen, dstLen int) error {
	if srcLen != dstLen {
		return &garb.SizeError{Kind: garb.LengthMismatch, Got: srcLen, Want: dstLen}
	}
	return nil
}

// RGBAToBGRAInto copies src into dst with channels 0 and 2 exchanged.
func RGBAToBGRAInto(src []RGBA, dst []BGRA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Swap4(Bytes(dst), Bytes(src))
	return nil
}

// BGRAToRGBAInto copies src into dst with channels 0 and 2 exchanged.
func BGRAToRGBAInto(src []BGRA, dst []RGBA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Swap4(Bytes(dst), Bytes(src))
	return nil
}

// RGBToRGBAInto extends src into dst with alpha = 255.
func RGBToRGBAInto(src []RGB, dst []RGBA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Expand3To4(Bytes(dst), Bytes(src))
	return nil
}

// RGBToBGRAInto extends src into dst reversed, alpha = 255.
func RGBToBGRAInto(src []RGB, dst []BGRA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Expand3Swap4(Bytes(dst), Bytes(src))
	return nil
}

// BGRToRGBAInto extends src into dst reversed, alpha = 255.
func BGRToRGBAInto(src []BGR, dst []RGBA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Expand3Swap4(Bytes(dst), Bytes(src))
	return nil
}

// BGRToBGRAInto extends src into dst with alpha = 255.
func BGRToBGRAInto(src []BGR, dst []BGRA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Expand3To4(Bytes(dst), Bytes(src))
	return nil
}

// RGBAToRGBInto drops alpha from src into dst.
func RGBAToRGBInto(src []RGBA, dst []RGB) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Strip4To3(Bytes(dst), Bytes(src))
	return nil
}

// BGRAToBGRInto drops alpha from src into dst.
func BGRAToBGRInto(src []BGRA, dst []BGR) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Strip4To3(Bytes(dst), Bytes(src))
	return nil
}

// BGRAToRGBInto drops alpha and reverses channels from src into dst.
func BGRAToRGBInto(src []BGRA, dst []RGB) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Strip4Swap3(Bytes(dst), Bytes(src))
	return nil
}

// RGBAToBGRInto drops alpha and reverses channels from src into dst.
func RGBAToBGRInto(src []RGBA, dst []BGR) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Strip4Swap3(Bytes(dst), Bytes(src))
	return nil
}

// GrayToRGBAInto broadcasts luminance into dst, alpha = 255.
func GrayToRGBAInto(src []Gray, dst []RGBA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Gray1To4(Bytes(dst), Bytes(src))
	return nil
}

// GrayToBGRAInto broadcasts luminance into dst, alpha = 255.
func GrayToBGRAInto(src []Gray, dst []BGRA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Gray1To4(Bytes(dst), Bytes(src))
	return nil
}

// GrayAlphaToRGBAInto broadcasts luminance into dst keeping the source
// alpha.
func GrayAlphaToRGBAInto(src []GrayAlpha, dst []RGBA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Gray2To4(Bytes(dst), Bytes(src))
	return nil
}

// GrayAlphaToBGRAInto broadcasts luminance into dst keeping the source
// alpha.
func GrayAlphaToBGRAInto(src []GrayAlpha, dst []BGRA) error {
	if err := checkLen(len(src), len(dst)); err != nil {
		return err
	}
	swizzle.Active().Gray2To4(Bytes(dst), Bytes(src))
	return nil
}
