// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package frame applies garb's conversions to whole images: borrowed
// strided views over caller-owned buffers, and adaptors for the standard
// library's image types including a BGRA image implementation.
package frame

import "github.com/imazen/garb"

// A Frame is a borrowed strided view of pixel data.  Stride is in bytes;
// rows may carry padding, which no conversion reads or writes.  The
// bytes-per-pixel of a Frame is implied by the operation it is passed
// to, matching the byte-level API.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// Contiguous returns a view of pix as height rows of width pixels with
// no padding, for the given bytes-per-pixel.
func Contiguous(pix []byte, width, height, bpp int) Frame {
	return Frame{Pix: pix, Width: width, Height: height, Stride: width * bpp}
}

func checkDims(src, dst Frame) error {
	if src.Width != dst.Width || src.Height != dst.Height {
		return &garb.SizeError{
			Kind: garb.LengthMismatch,
			Got:  src.Width * src.Height,
			Want: dst.Width * dst.Height,
		}
	}
	return nil
}

func convert(op func(src, dst []byte, width, height, srcStride, dstStride int) error, src, dst Frame) error {
	if err := checkDims(src, dst); err != nil {
		return err
	}
	return op(src.Pix, dst.Pix, src.Width, src.Height, src.Stride, dst.Stride)
}

// SwapRGBAToBGRA swaps channels 0 and 2 of a 4 bpp frame in place
// (RGBA↔BGRA; its own inverse).
func SwapRGBAToBGRA(f Frame) error {
	return garb.RGBAToBGRAInPlaceStrided(f.Pix, f.Width, f.Height, f.Stride)
}

// SwapRGBToBGR swaps channels 0 and 2 of a 3 bpp frame in place
// (RGB↔BGR; its own inverse).
func SwapRGBToBGR(f Frame) error {
	return garb.RGBToBGRInPlaceStrided(f.Pix, f.Width, f.Height, f.Stride)
}

// FillAlpha sets the alpha byte of every pixel of a 4 bpp frame to 255.
func FillAlpha(f Frame) error {
	return garb.FillAlphaRGBAStrided(f.Pix, f.Width, f.Height, f.Stride)
}

// ConvertRGBAToBGRA copies src into dst swapping channels 0 and 2.
// Both frames are 4 bpp and must agree on dimensions; strides may
// differ.
func ConvertRGBAToBGRA(src, dst Frame) error {
	return convert(garb.RGBAToBGRAStrided, src, dst)
}

// ConvertBGRAToRGBA is ConvertRGBAToBGRA under its inverse name.
func ConvertBGRAToRGBA(src, dst Frame) error {
	return convert(garb.BGRAToRGBAStrided, src, dst)
}

// ConvertRGBToBGR copies a 3 bpp src into a 3 bpp dst swapping channels
// 0 and 2.
func ConvertRGBToBGR(src, dst Frame) error {
	return convert(garb.RGBToBGRStrided, src, dst)
}

// ConvertRGBToRGBA copies a 3 bpp src into a 4 bpp dst, alpha = 255.
func ConvertRGBToRGBA(src, dst Frame) error {
	return convert(garb.RGBToRGBAStrided, src, dst)
}

// ConvertRGBToBGRA copies a 3 bpp src into a 4 bpp dst reversed,
// alpha = 255.
func ConvertRGBToBGRA(src, dst Frame) error {
	return convert(garb.RGBToBGRAStrided, src, dst)
}

// ConvertBGRToRGBA copies a 3 bpp src into a 4 bpp dst reversed,
// alpha = 255.
func ConvertBGRToRGBA(src, dst Frame) error {
	return convert(garb.BGRToRGBAStrided, src, dst)
}

// ConvertBGRToBGRA copies a 3 bpp src into a 4 bpp dst, alpha = 255.
func ConvertBGRToBGRA(src, dst Frame) error {
	return convert(garb.BGRToBGRAStrided, src, dst)
}

// ConvertGrayToRGBA broadcasts a 1 bpp src into a 4 bpp dst,
// alpha = 255.  The result is equally valid BGRA.
func ConvertGrayToRGBA(src, dst Frame) error {
	return convert(garb.GrayToRGBAStrided, src, dst)
}

// ConvertGrayToBGRA is ConvertGrayToRGBA.
func ConvertGrayToBGRA(src, dst Frame) error {
	return convert(garb.GrayToBGRAStrided, src, dst)
}

// ConvertGrayAlphaToRGBA broadcasts a 2 bpp gray+alpha src into a 4 bpp
// dst keeping the source alpha.
func ConvertGrayAlphaToRGBA(src, dst Frame) error {
	return convert(garb.GrayAlphaToRGBAStrided, src, dst)
}

// ConvertGrayAlphaToBGRA is ConvertGrayAlphaToRGBA.
func ConvertGrayAlphaToBGRA(src, dst Frame) error {
	return convert(garb.GrayAlphaToBGRAStrided, src, dst)
}

// ConvertRGBAToRGB copies a 4 bpp src into a 3 bpp dst dropping alpha.
func ConvertRGBAToRGB(src, dst Frame) error {
	return convert(garb.RGBAToRGBStrided, src, dst)
}

// ConvertBGRAToBGR copies a 4 bpp src into a 3 bpp dst dropping alpha.
func ConvertBGRAToBGR(src, dst Frame) error {
	return convert(garb.BGRAToBGRStrided, src, dst)
}

// ConvertBGRAToRGB copies a 4 bpp src into a 3 bpp dst dropping alpha
// and reversing channels.
func ConvertBGRAToRGB(src, dst Frame) error {
	return convert(garb.BGRAToRGBStrided, src, dst)
}

// ConvertRGBAToBGR copies a 4 bpp src into a 3 bpp dst dropping alpha
// and reversing channels.
func ConvertRGBAToBGR(src, dst Frame) error {
	return convert(garb.RGBAToBGRStrided, src, dst)
}
