// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swizzle

import "golang.org/x/sys/cpu"

// *** the following functions are defined in swizzle_amd64.s

//go:noescape
func swap4SSSE3Asm(dst, src []byte)

//go:noescape
func swap3SSSE3Asm(dst, src []byte)

//go:noescape
func expand3SSSE3Asm(dst, src []byte)

//go:noescape
func expand3SwapSSSE3Asm(dst, src []byte)

//go:noescape
func strip4SSSE3Asm(dst, src []byte)

//go:noescape
func strip4SwapSSSE3Asm(dst, src []byte)

//go:noescape
func gray1SSSE3Asm(dst, src []byte)

//go:noescape
func gray2SSSE3Asm(dst, src []byte)

//go:noescape
func fillAlphaSSSE3Asm(buf []byte)

//go:noescape
func swap4AVX2Asm(dst, src []byte)

//go:noescape
func swap3AVX2Asm(dst, src []byte)

//go:noescape
func expand3AVX2Asm(dst, src []byte)

//go:noescape
func expand3SwapAVX2Asm(dst, src []byte)

//go:noescape
func strip4AVX2Asm(dst, src []byte)

//go:noescape
func strip4SwapAVX2Asm(dst, src []byte)

//go:noescape
func gray1AVX2Asm(dst, src []byte)

//go:noescape
func gray2AVX2Asm(dst, src []byte)

//go:noescape
func fillAlphaAVX2Asm(buf []byte)

// *** end assembly function signatures

func init() {
	switch {
	case cpu.X86.HasAVX2:
		activeTier = TierWide
		active = avx2Kernels
		impls = append(impls, Impl{TierNarrow, ssse3Kernels}, Impl{TierWide, avx2Kernels})
	case cpu.X86.HasSSSE3:
		activeTier = TierNarrow
		active = ssse3Kernels
		impls = append(impls, Impl{TierNarrow, ssse3Kernels})
	default:
		activeTier = TierScalar
		active = scalarKernels
	}
}

// SSSE3 (narrow) tier: 128-bit shuffles, 4 pixels per iteration for the
// 3 and 4 bpp kernels, 16 gray or 8 gray+alpha pixels per iteration.

func swap4SSSE3(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		swap4SSSE3Asm(dst[:n], src[:n])
	}
	swap4Scalar(dst[n:], src[n:])
}

func swap3SSSE3(dst, src []byte) {
	n := window12Bulk(len(src))
	if n > 0 {
		swap3SSSE3Asm(dst, src)
	}
	swap3Scalar(dst[n:], src[n:])
}

func expand3SSSE3(dst, src []byte) {
	n := window12Bulk(len(src))
	if n > 0 {
		expand3SSSE3Asm(dst, src)
	}
	expand3To4Scalar(dst[n/3*4:], src[n:])
}

func expand3SwapSSSE3(dst, src []byte) {
	n := window12Bulk(len(src))
	if n > 0 {
		expand3SwapSSSE3Asm(dst, src)
	}
	expand3Swap4Scalar(dst[n/3*4:], src[n:])
}

func strip4SSSE3(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		strip4SSSE3Asm(dst[:n/4*3], src[:n])
	}
	strip4To3Scalar(dst[n/4*3:], src[n:])
}

func strip4SwapSSSE3(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		strip4SwapSSSE3Asm(dst[:n/4*3], src[:n])
	}
	strip4Swap3Scalar(dst[n/4*3:], src[n:])
}

func gray1SSSE3(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		gray1SSSE3Asm(dst[:n*4], src[:n])
	}
	gray1To4Scalar(dst[n*4:], src[n:])
}

func gray2SSSE3(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		gray2SSSE3Asm(dst[:n*2], src[:n])
	}
	gray2To4Scalar(dst[n*2:], src[n:])
}

func fillAlphaSSSE3(buf []byte) {
	n := len(buf) &^ 15
	if n > 0 {
		fillAlphaSSSE3Asm(buf[:n])
	}
	fillAlpha4Scalar(buf[n:])
}

var ssse3Kernels = Kernels{
	Swap4:        swap4SSSE3,
	Swap3:        swap3SSSE3,
	Expand3To4:   expand3SSSE3,
	Expand3Swap4: expand3SwapSSSE3,
	Strip4To3:    strip4SSSE3,
	Strip4Swap3:  strip4SwapSSSE3,
	Gray1To4:     gray1SSSE3,
	Gray2To4:     gray2SSSE3,
	FillAlpha4:   fillAlphaSSSE3,
}

// AVX2 (wide) tier: 256-bit shuffles, 8 pixels per iteration everywhere.
// The 3 bpp kernels load and store exact 24-byte groups, so no window
// accounting is needed; bulk sizes are plain multiples.

func swap4AVX2(dst, src []byte) {
	n := len(src) &^ 31
	if n > 0 {
		swap4AVX2Asm(dst[:n], src[:n])
	}
	swap4Scalar(dst[n:], src[n:])
}

func swap3AVX2(dst, src []byte) {
	n := len(src) - len(src)%24
	if n > 0 {
		swap3AVX2Asm(dst[:n], src[:n])
	}
	swap3Scalar(dst[n:], src[n:])
}

func expand3AVX2(dst, src []byte) {
	n := len(src) - len(src)%24
	if n > 0 {
		expand3AVX2Asm(dst[:n/3*4], src[:n])
	}
	expand3To4Scalar(dst[n/3*4:], src[n:])
}

func expand3SwapAVX2(dst, src []byte) {
	n := len(src) - len(src)%24
	if n > 0 {
		expand3SwapAVX2Asm(dst[:n/3*4], src[:n])
	}
	expand3Swap4Scalar(dst[n/3*4:], src[n:])
}

func strip4AVX2(dst, src []byte) {
	n := len(src) &^ 31
	if n > 0 {
		strip4AVX2Asm(dst[:n/4*3], src[:n])
	}
	strip4To3Scalar(dst[n/4*3:], src[n:])
}

func strip4SwapAVX2(dst, src []byte) {
	n := len(src) &^ 31
	if n > 0 {
		strip4SwapAVX2Asm(dst[:n/4*3], src[:n])
	}
	strip4Swap3Scalar(dst[n/4*3:], src[n:])
}

func gray1AVX2(dst, src []byte) {
	n := len(src) &^ 7
	if n > 0 {
		gray1AVX2Asm(dst[:n*4], src[:n])
	}
	gray1To4Scalar(dst[n*4:], src[n:])
}

func gray2AVX2(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		gray2AVX2Asm(dst[:n*2], src[:n])
	}
	gray2To4Scalar(dst[n*2:], src[n:])
}

func fillAlphaAVX2(buf []byte) {
	n := len(buf) &^ 31
	if n > 0 {
		fillAlphaAVX2Asm(buf[:n])
	}
	fillAlpha4Scalar(buf[n:])
}

var avx2Kernels = Kernels{
	Swap4:        swap4AVX2,
	Swap3:        swap3AVX2,
	Expand3To4:   expand3AVX2,
	Expand3Swap4: expand3SwapAVX2,
	Strip4To3:    strip4AVX2,
	Strip4Swap3:  strip4SwapAVX2,
	Gray1To4:     gray1AVX2,
	Gray2To4:     gray2AVX2,
	FillAlpha4:   fillAlphaAVX2,
}
