// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pixel_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/imazen/garb"
	"github.com/imazen/garb/pixel"
	"github.com/stretchr/testify/require"
)

func randRGBA(n int) []pixel.RGBA {
	px := make([]pixel.RGBA, n)
	for i := range px {
		px[i] = pixel.RGBA{
			R: byte(rand.Intn(256)),
			G: byte(rand.Intn(256)),
			B: byte(rand.Intn(256)),
			A: byte(rand.Intn(256)),
		}
	}
	return px
}

func TestSwapInPlaceAliases(t *testing.T) {
	px := randRGBA(37)
	orig := append([]pixel.RGBA(nil), px...)
	bgra := pixel.RGBAToBGRA(px)
	require.Len(t, bgra, len(orig))
	for i, p := range orig {
		require.Equal(t, pixel.BGRA{B: p.B, G: p.G, R: p.R, A: p.A}, bgra[i], "pixel %d", i)
	}
	// The view aliases the original memory: mutate through bgra, observe
	// through the byte view of px.
	bgra[0] = pixel.BGRA{B: 1, G: 2, R: 3, A: 4}
	require.Equal(t, []byte{1, 2, 3, 4}, pixel.Bytes(px)[:4])

	back := pixel.BGRAToRGBA(bgra)
	back[0] = orig[0]
	require.Equal(t, orig, back)
}

func TestRGBSwapRoundTrip(t *testing.T) {
	px := make([]pixel.RGB, 101)
	for i := range px {
		px[i] = pixel.RGB{R: byte(i), G: byte(2 * i), B: byte(3 * i)}
	}
	orig := append([]pixel.RGB(nil), px...)
	require.Equal(t, orig, pixel.BGRToRGB(pixel.RGBToBGR(px)))
}

func TestBytesLayout(t *testing.T) {
	px := []pixel.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, pixel.Bytes(px))
	require.Nil(t, pixel.Bytes([]pixel.Gray(nil)))

	ga := []pixel.GrayAlpha{{Y: 9, A: 10}}
	require.Equal(t, []byte{9, 10}, pixel.Bytes(ga))
}

// TestIntoMatchesByteAPI: the typed copies must be the same operation as
// the byte-level entry points.
func TestIntoMatchesByteAPI(t *testing.T) {
	n := 203
	src := randRGBA(n)
	dst := make([]pixel.BGRA, n)
	require.NoError(t, pixel.RGBAToBGRAInto(src, dst))

	wantBytes := make([]byte, n*4)
	require.NoError(t, garb.RGBAToBGRA(pixel.Bytes(src), wantBytes))
	require.Equal(t, wantBytes, pixel.Bytes(dst))

	rgb := make([]pixel.RGB, n)
	require.NoError(t, pixel.RGBAToRGBInto(src, rgb))
	want3 := make([]byte, n*3)
	require.NoError(t, garb.RGBAToRGB(pixel.Bytes(src), want3))
	require.Equal(t, want3, pixel.Bytes(rgb))

	gray := make([]pixel.GrayAlpha, n)
	for i := range gray {
		gray[i] = pixel.GrayAlpha{Y: byte(rand.Intn(256)), A: byte(rand.Intn(256))}
	}
	rgba := make([]pixel.RGBA, n)
	require.NoError(t, pixel.GrayAlphaToRGBAInto(gray, rgba))
	for i := range gray {
		require.Equal(t, pixel.RGBA{R: gray[i].Y, G: gray[i].Y, B: gray[i].Y, A: gray[i].A}, rgba[i])
	}
}

func TestFillAlpha(t *testing.T) {
	px := randRGBA(65)
	pixel.FillAlpha(px)
	for i, p := range px {
		require.EqualValues(t, 255, p.A, "pixel %d", i)
	}
}

func TestIntoLengthMismatch(t *testing.T) {
	err := pixel.RGBAToBGRAInto(make([]pixel.RGBA, 3), make([]pixel.BGRA, 4))
	var se *garb.SizeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, garb.LengthMismatch, se.Kind)
}
