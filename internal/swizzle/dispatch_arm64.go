// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swizzle

// NEON is part of the arm64 ABI, so the narrow tier needs no feature
// inspection; there is no wide tier on this target.

// *** the following functions are defined in swizzle_arm64.s

//go:noescape
func swap4NEONAsm(dst, src []byte)

//go:noescape
func swap3NEONAsm(dst, src []byte)

//go:noescape
func expand3NEONAsm(dst, src []byte)

//go:noescape
func expand3SwapNEONAsm(dst, src []byte)

//go:noescape
func strip4NEONAsm(dst, src []byte)

//go:noescape
func strip4SwapNEONAsm(dst, src []byte)

//go:noescape
func gray1NEONAsm(dst, src []byte)

//go:noescape
func gray2NEONAsm(dst, src []byte)

//go:noescape
func fillAlphaNEONAsm(buf []byte)

// *** end assembly function signatures

func init() {
	activeTier = TierNarrow
	active = neonKernels
	impls = append(impls, Impl{TierNarrow, neonKernels})
}

func swap4NEON(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		swap4NEONAsm(dst[:n], src[:n])
	}
	swap4Scalar(dst[n:], src[n:])
}

func swap3NEON(dst, src []byte) {
	n := window12Bulk(len(src))
	if n > 0 {
		swap3NEONAsm(dst, src)
	}
	swap3Scalar(dst[n:], src[n:])
}

func expand3NEON(dst, src []byte) {
	n := window12Bulk(len(src))
	if n > 0 {
		expand3NEONAsm(dst, src)
	}
	expand3To4Scalar(dst[n/3*4:], src[n:])
}

func expand3SwapNEON(dst, src []byte) {
	n := window12Bulk(len(src))
	if n > 0 {
		expand3SwapNEONAsm(dst, src)
	}
	expand3Swap4Scalar(dst[n/3*4:], src[n:])
}

func strip4NEON(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		strip4NEONAsm(dst[:n/4*3], src[:n])
	}
	strip4To3Scalar(dst[n/4*3:], src[n:])
}

func strip4SwapNEON(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		strip4SwapNEONAsm(dst[:n/4*3], src[:n])
	}
	strip4Swap3Scalar(dst[n/4*3:], src[n:])
}

func gray1NEON(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		gray1NEONAsm(dst[:n*4], src[:n])
	}
	gray1To4Scalar(dst[n*4:], src[n:])
}

func gray2NEON(dst, src []byte) {
	n := len(src) &^ 15
	if n > 0 {
		gray2NEONAsm(dst[:n*2], src[:n])
	}
	gray2To4Scalar(dst[n*2:], src[n:])
}

func fillAlphaNEON(buf []byte) {
	n := len(buf) &^ 15
	if n > 0 {
		fillAlphaNEONAsm(buf[:n])
	}
	fillAlpha4Scalar(buf[n:])
}

var neonKernels = Kernels{
	Swap4:        swap4NEON,
	Swap3:        swap3NEON,
	Expand3To4:   expand3NEON,
	Expand3Swap4: expand3SwapNEON,
	Strip4To3:    strip4NEON,
	Strip4Swap3:  strip4SwapNEON,
	Gray1To4:     gray1NEON,
	Gray2To4:     gray2NEON,
	FillAlpha4:   fillAlphaNEON,
}
