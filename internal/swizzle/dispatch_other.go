// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package swizzle

// Targets without vector kernels, including wasm (Go exposes no SIMD128
// surface there), run the scalar reference tier.

func init() {
	activeTier = TierScalar
	active = scalarKernels
}
