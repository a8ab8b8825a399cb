// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pixel provides typed views over garb's byte-level conversions.
// The pixel structs are fixed-layout aggregates of uint8 fields, so a
// slice of them is exactly the byte buffer the kernels operate on; the
// in-place swaps return the same memory reinterpreted as the new layout
// without copying.
package pixel

import "unsafe"

// RGB is a 3-byte pixel in R, G, B order.
type RGB struct{ R, G, B uint8 }

// BGR is a 3-byte pixel in B, G, R order.
type BGR struct{ B, G, R uint8 }

// RGBA is a 4-byte pixel in R, G, B, A order.
type RGBA struct{ R, G, B, A uint8 }

// BGRA is a 4-byte pixel in B, G, R, A order.
type BGRA struct{ B, G, R, A uint8 }

// Gray is a single-byte luminance pixel.
type Gray struct{ Y uint8 }

// GrayAlpha is a 2-byte luminance-plus-alpha pixel.
type GrayAlpha struct{ Y, A uint8 }

// Bytes returns the backing bytes of a pixel slice without copying.
// Mutations through either view are visible in the other.
func Bytes[T RGB | BGR | RGBA | BGRA | Gray | GrayAlpha](px []T) []byte {
	if len(px) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(px))), len(px)*int(unsafe.Sizeof(zero)))
}

// reinterpret converts a pixel slice to a same-size layout in place.
func reinterpret[D, S any](px []S) []D {
	if len(px) == 0 {
		return nil
	}
	return unsafe.Slice((*D)(unsafe.Pointer(unsafe.SliceData(px))), len(px))
}
