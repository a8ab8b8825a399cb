// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package frame

import (
	"image"
	"image/color"
)

// BGRA is an in-memory image whose pixels are stored byte-ordered B, G,
// R, A — the layout of X11 and Windows surfaces and of most GPU
// swapchain formats.  Like image.RGBA its values are alpha-premultiplied.
type BGRA struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewBGRA returns a new BGRA image with the given bounds.
func NewBGRA(r image.Rectangle) *BGRA {
	return &BGRA{
		Pix:    make([]byte, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

func (p *BGRA) ColorModel() color.Model { return color.RGBAModel }

func (p *BGRA) Bounds() image.Rectangle { return p.Rect }

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *BGRA) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *BGRA) At(x, y int) color.Color { return p.RGBAAt(x, y) }

func (p *BGRA) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	return color.RGBA{R: s[2], G: s[1], B: s[0], A: s[3]}
}

func (p *BGRA) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[i : i+4 : i+4]
	s[0] = c1.B
	s[1] = c1.G
	s[2] = c1.R
	s[3] = c1.A
}

// view returns the Frame addressing img's bounds within its Pix slice.
func view(pix []byte, stride, startOff, w, h int) Frame {
	return Frame{Pix: pix[startOff:], Width: w, Height: h, Stride: stride}
}

// SwapRGBAToBGRAImage reinterprets img as BGRA by swapping its channels
// in place.  The returned image shares img.Pix; img must not be used
// afterwards.
func SwapRGBAToBGRAImage(img *image.RGBA) (*BGRA, error) {
	b := img.Bounds()
	f := view(img.Pix, img.Stride, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	if err := SwapRGBAToBGRA(f); err != nil {
		return nil, err
	}
	return &BGRA{Pix: img.Pix, Stride: img.Stride, Rect: b}, nil
}

// SwapBGRAToRGBAImage reinterprets img as RGBA by swapping its channels
// in place.  The returned image shares img.Pix; img must not be used
// afterwards.
func SwapBGRAToRGBAImage(img *BGRA) (*image.RGBA, error) {
	b := img.Rect
	f := view(img.Pix, img.Stride, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	if err := SwapRGBAToBGRA(f); err != nil {
		return nil, err
	}
	return &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: b}, nil
}

// BGRAFromRGBA returns a new BGRA copy of img.
func BGRAFromRGBA(img *image.RGBA) (*BGRA, error) {
	b := img.Bounds()
	dst := NewBGRA(b)
	src := view(img.Pix, img.Stride, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	if err := ConvertRGBAToBGRA(src, Frame{Pix: dst.Pix, Width: b.Dx(), Height: b.Dy(), Stride: dst.Stride}); err != nil {
		return nil, err
	}
	return dst, nil
}

// RGBAFromBGRA returns a new image.RGBA copy of img.
func RGBAFromBGRA(img *BGRA) (*image.RGBA, error) {
	b := img.Rect
	dst := image.NewRGBA(b)
	src := view(img.Pix, img.Stride, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	if err := ConvertBGRAToRGBA(src, Frame{Pix: dst.Pix, Width: b.Dx(), Height: b.Dy(), Stride: dst.Stride}); err != nil {
		return nil, err
	}
	return dst, nil
}

// RGBAFromGray returns a new image.RGBA with img's luminance broadcast
// to the colour channels and alpha = 255.
func RGBAFromGray(img *image.Gray) (*image.RGBA, error) {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	src := view(img.Pix, img.Stride, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	if err := ConvertGrayToRGBA(src, Frame{Pix: dst.Pix, Width: b.Dx(), Height: b.Dy(), Stride: dst.Stride}); err != nil {
		return nil, err
	}
	return dst, nil
}

// OpaqueRGBA forces alpha to 255 over img's bounds in place and returns
// img.
func OpaqueRGBA(img *image.RGBA) (*image.RGBA, error) {
	b := img.Bounds()
	f := view(img.Pix, img.Stride, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	if err := FillAlpha(f); err != nil {
		return nil, err
	}
	return img, nil
}

var _ image.Image = (*BGRA)(nil)
