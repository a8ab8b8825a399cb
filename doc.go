// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package garb converts byte buffers between the common 8-bit pixel
// layouts: RGB, BGR, RGBA, BGRA, Gray, and GrayAlpha.  Swap your BGR for
// your RGB, strip or add an alpha channel, broadcast grayscale, and tie
// up loose ends like an unreliable alpha — at SIMD speed where the host
// supports it (AVX2 and SSSE3 on amd64, NEON on arm64), with automatic
// fallback to scalar code everywhere else.
//
// Conversion functions follow the pattern {Src}To{Dst} for copy operations and
// {Src}To{Dst}InPlace for in-place mutations.  Append Strided for
// multi-row buffers with row padding.  Operations that are their own
// inverse exist under both names (RGBAToBGRA and BGRAToRGBA are the same
// byte permutation) and dispatch to the same kernel.
//
// A stride (also called pitch) is the distance in bytes between the
// start of one row and the start of the next.  When stride == width*bpp
// the image is contiguous; when it is larger, the gap at the end of each
// row is padding, which garb never reads or writes.  A strided buffer
// must hold at least (height-1)*stride + width*bpp bytes.  Strided
// functions take dimensions before strides: in-place variants are
// (buf, width, height, stride), copy variants are
// (src, dst, width, height, srcStride, dstStride).
//
// Copy operations require the destination to be a distinct buffer with
// exactly the same pixel count as the source; partially overlapping
// buffers are not supported.  The only error condition is a size, count,
// or stride violation, reported as *SizeError before anything is
// written.  Calls with zero width, zero height, or empty buffers succeed
// and do nothing.
//
// The library allocates nothing, keeps no state beyond the one-time CPU
// capability detection, and is safe for concurrent use on disjoint
// buffers.
package garb
