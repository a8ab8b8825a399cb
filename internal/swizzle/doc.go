// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package swizzle provides the tiered row kernels behind garb's pixel
// format conversions: channel swaps, 3↔4 byte-per-pixel expansion and
// stripping, gray broadcast, and alpha filling over contiguous byte
// regions.
//
// Three implementation tiers exist.  The scalar tier is the reference:
// plain per-pixel loops whose output defines the semantics of every
// operation.  On amd64, a narrow tier built on SSSE3 byte shuffles and a
// wide tier built on AVX2 are selected by inspecting CPU feature flags
// once, at package initialization.  On arm64 the narrow tier uses NEON
// table lookups, which the ABI guarantees, so no inspection happens.
// Everything else (including wasm, which Go gives no vector surface) runs
// scalar.
//
// The chosen tier is published as a table of per-operation function
// pointers resolved during init and never rewritten afterwards, so a
// conversion call pays no detection or branching cost beyond one function
// pointer load.  Go runs package init exactly once, before any use of the
// package, which makes init the memoisation primitive here; no atomics
// are needed on the read side.
//
// Vector kernels process the largest whole-block prefix of a row and hand
// the remainder to the scalar kernel.  They never read or write outside
// the slices they are given: loads that would cross the end of a row are
// not issued, and the odd-sized stores of the 3 byte-per-pixel kernels
// are split so the final bytes of a destination row are written exactly.
package swizzle
