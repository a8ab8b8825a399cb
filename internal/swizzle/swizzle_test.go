// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swizzle

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/assert"
)

const sentinel = 0xA5

type copyOp struct {
	name   string
	srcBpp int
	dstBpp int
	run    func(k Kernels, dst, src []byte)
}

var copyOps = []copyOp{
	{"swap4", 4, 4, func(k Kernels, d, s []byte) { k.Swap4(d, s) }},
	{"swap3", 3, 3, func(k Kernels, d, s []byte) { k.Swap3(d, s) }},
	{"expand3to4", 3, 4, func(k Kernels, d, s []byte) { k.Expand3To4(d, s) }},
	{"expand3swap4", 3, 4, func(k Kernels, d, s []byte) { k.Expand3Swap4(d, s) }},
	{"strip4to3", 4, 3, func(k Kernels, d, s []byte) { k.Strip4To3(d, s) }},
	{"strip4swap3", 4, 3, func(k Kernels, d, s []byte) { k.Strip4Swap3(d, s) }},
	{"gray1to4", 1, 4, func(k Kernels, d, s []byte) { k.Gray1To4(d, s) }},
	{"gray2to4", 2, 4, func(k Kernels, d, s []byte) { k.Gray2To4(d, s) }},
}

// pixelCounts covers every residue of every vector block size in use
// (up to 16 pixels per iteration), plus a few larger sizes so the bulk
// loops run for more than one iteration.
func pixelCounts() []int {
	counts := make([]int, 0, 160)
	for n := 0; n <= 130; n++ {
		counts = append(counts, n)
	}
	for i := 0; i < 24; i++ {
		counts = append(counts, 131+rand.Intn(4096))
	}
	return counts
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	return b
}

// TestCopyKernelsMatchScalar checks every vector implementation against
// the scalar reference, byte for byte, with sentinel margins around the
// destination to catch out-of-bounds stores.
func TestCopyKernelsMatchScalar(t *testing.T) {
	for _, impl := range Implementations() {
		if impl.Tier == TierScalar {
			continue
		}
		for _, op := range copyOps {
			for _, n := range pixelCounts() {
				src := randBytes(n * op.srcBpp)
				want := make([]byte, n*op.dstBpp)
				op.run(scalarKernels, want, src)

				arr := make([]byte, n*op.dstBpp+64)
				for i := range arr {
					arr[i] = sentinel
				}
				got := arr[32 : 32+n*op.dstBpp]
				op.run(impl.K, got, src)

				assert.EQ(t, got, want, "op=%s tier=%s n=%d", op.name, impl.Tier, n)
				for i := 0; i < 32; i++ {
					if arr[i] != sentinel || arr[len(arr)-1-i] != sentinel {
						t.Fatalf("op=%s tier=%s n=%d: clobbered sentinel", op.name, impl.Tier, n)
					}
				}
			}
		}
	}
}

// TestInPlaceKernelsMatchScalar covers the dst == src case of the
// same-bpp kernels and FillAlpha4.
func TestInPlaceKernelsMatchScalar(t *testing.T) {
	inPlaceOps := []struct {
		name string
		bpp  int
		run  func(k Kernels, buf []byte)
	}{
		{"swap4", 4, func(k Kernels, b []byte) { k.Swap4(b, b) }},
		{"swap3", 3, func(k Kernels, b []byte) { k.Swap3(b, b) }},
		{"fillalpha4", 4, func(k Kernels, b []byte) { k.FillAlpha4(b) }},
	}
	for _, impl := range Implementations() {
		if impl.Tier == TierScalar {
			continue
		}
		for _, op := range inPlaceOps {
			for _, n := range pixelCounts() {
				orig := randBytes(n * op.bpp)
				want := make([]byte, len(orig))
				copy(want, orig)
				op.run(scalarKernels, want)

				arr := make([]byte, n*op.bpp+64)
				for i := range arr {
					arr[i] = sentinel
				}
				got := arr[32 : 32+n*op.bpp]
				copy(got, orig)
				op.run(impl.K, got)

				assert.EQ(t, got, want, "op=%s tier=%s n=%d", op.name, impl.Tier, n)
				for i := 0; i < 32; i++ {
					if arr[i] != sentinel || arr[len(arr)-1-i] != sentinel {
						t.Fatalf("op=%s tier=%s n=%d: clobbered sentinel", op.name, impl.Tier, n)
					}
				}
			}
		}
	}
}

// TestSwapRoundTrip: swapping twice is the identity, for every tier,
// in place and by copy.
func TestSwapRoundTrip(t *testing.T) {
	for _, impl := range Implementations() {
		for _, n := range []int{0, 1, 3, 4, 5, 7, 8, 15, 16, 17, 64, 1021} {
			orig4 := randBytes(n * 4)
			buf := make([]byte, len(orig4))
			copy(buf, orig4)
			impl.K.Swap4(buf, buf)
			impl.K.Swap4(buf, buf)
			assert.EQ(t, buf, orig4, "swap4 tier=%s n=%d", impl.Tier, n)

			orig3 := randBytes(n * 3)
			tmp := make([]byte, n*3)
			out := make([]byte, n*3)
			impl.K.Swap3(tmp, orig3)
			impl.K.Swap3(out, tmp)
			assert.EQ(t, out, orig3, "swap3 tier=%s n=%d", impl.Tier, n)
		}
	}
}

// TestExpandStripCancel: stripping an expanded buffer restores it.
func TestExpandStripCancel(t *testing.T) {
	for _, impl := range Implementations() {
		for _, n := range []int{0, 1, 2, 5, 8, 11, 16, 33, 500} {
			rgb := randBytes(n * 3)
			rgba := make([]byte, n*4)
			back := make([]byte, n*3)
			impl.K.Expand3To4(rgba, rgb)
			impl.K.Strip4To3(back, rgba)
			assert.EQ(t, back, rgb, "tier=%s n=%d", impl.Tier, n)
			for i := 3; i < len(rgba); i += 4 {
				if rgba[i] != 0xFF {
					t.Fatalf("tier=%s n=%d: alpha byte %d = %d", impl.Tier, n, i, rgba[i])
				}
			}
		}
	}
}

// TestStripIgnoresAlpha: the stripped output must not depend on the
// source alpha bytes.
func TestStripIgnoresAlpha(t *testing.T) {
	for _, impl := range Implementations() {
		n := 257
		src := randBytes(n * 4)
		variant := append([]byte(nil), src...)
		for i := 3; i < len(variant); i += 4 {
			variant[i] = byte(rand.Intn(256))
		}
		a := make([]byte, n*3)
		b := make([]byte, n*3)
		impl.K.Strip4To3(a, src)
		impl.K.Strip4To3(b, variant)
		assert.EQ(t, a, b, "tier=%s", impl.Tier)
		impl.K.Strip4Swap3(a, src)
		impl.K.Strip4Swap3(b, variant)
		assert.EQ(t, a, b, "swap tier=%s", impl.Tier)
	}
}

func TestWindow12Bulk(t *testing.T) {
	for n := 0; n < 400; n++ {
		bulk := window12Bulk(n)
		if bulk%12 != 0 {
			t.Fatalf("n=%d: bulk %d not a multiple of 12", n, bulk)
		}
		if n < 16 {
			assert.EQ(t, bulk, 0, "n=%d", n)
			continue
		}
		// The last window load must stay in bounds, and one more window
		// must not fit.
		if bulk-12+16 > n {
			t.Fatalf("n=%d: bulk %d reads out of bounds", n, bulk)
		}
		if bulk+16 <= n {
			t.Fatalf("n=%d: bulk %d stopped early", n, bulk)
		}
	}
}

func TestActiveTierConsistent(t *testing.T) {
	impls := Implementations()
	if len(impls) == 0 || impls[0].Tier != TierScalar {
		t.Fatal("scalar implementation missing or not first")
	}
	last := impls[len(impls)-1]
	assert.EQ(t, ActiveTier(), last.Tier)
	// Active must be the highest tier's table: spot-check one kernel on
	// identical input.
	src := randBytes(4 * 64)
	a := make([]byte, len(src))
	b := make([]byte, len(src))
	Active().Swap4(a, src)
	last.K.Swap4(b, src)
	if !bytes.Equal(a, b) {
		t.Fatal("Active() disagrees with highest implementation")
	}
}
