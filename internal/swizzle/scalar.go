// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swizzle

// Scalar kernels.  These define the observable semantics of every
// operation: the vector tiers are required to be byte-identical, and the
// dispatch wrappers use these loops to finish whatever tail a vector body
// leaves behind.
//
// The same-bpp kernels are written load-both-then-store so that dst and
// src may be the same slice.

func swap4Scalar(dst, src []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		b0, b2 := src[i], src[i+2]
		dst[i+1] = src[i+1]
		dst[i+3] = src[i+3]
		dst[i] = b2
		dst[i+2] = b0
	}
}

func swap3Scalar(dst, src []byte) {
	for i := 0; i+3 <= len(src); i += 3 {
		b0, b2 := src[i], src[i+2]
		dst[i+1] = src[i+1]
		dst[i] = b2
		dst[i+2] = b0
	}
}

func expand3To4Scalar(dst, src []byte) {
	j := 0
	for i := 0; i+3 <= len(src); i += 3 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xFF
		j += 4
	}
}

func expand3Swap4Scalar(dst, src []byte) {
	j := 0
	for i := 0; i+3 <= len(src); i += 3 {
		dst[j] = src[i+2]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i]
		dst[j+3] = 0xFF
		j += 4
	}
}

func strip4To3Scalar(dst, src []byte) {
	j := 0
	for i := 0; i+4 <= len(src); i += 4 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		j += 3
	}
}

func strip4Swap3Scalar(dst, src []byte) {
	j := 0
	for i := 0; i+4 <= len(src); i += 4 {
		dst[j] = src[i+2]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i]
		j += 3
	}
}

func gray1To4Scalar(dst, src []byte) {
	j := 0
	for _, g := range src {
		dst[j] = g
		dst[j+1] = g
		dst[j+2] = g
		dst[j+3] = 0xFF
		j += 4
	}
}

func gray2To4Scalar(dst, src []byte) {
	j := 0
	for i := 0; i+2 <= len(src); i += 2 {
		g := src[i]
		dst[j] = g
		dst[j+1] = g
		dst[j+2] = g
		dst[j+3] = src[i+1]
		j += 4
	}
}

func fillAlpha4Scalar(buf []byte) {
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 0xFF
	}
}

var scalarKernels = Kernels{
	Swap4:        swap4Scalar,
	Swap3:        swap3Scalar,
	Expand3To4:   expand3To4Scalar,
	Expand3Swap4: expand3Swap4Scalar,
	Strip4To3:    strip4To3Scalar,
	Strip4Swap3:  strip4Swap3Scalar,
	Gray1To4:     gray1To4Scalar,
	Gray2To4:     gray2To4Scalar,
	FillAlpha4:   fillAlpha4Scalar,
}
