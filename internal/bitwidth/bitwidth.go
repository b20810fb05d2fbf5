// Package bitwidth holds the small numeric helpers shared by the gamma coder
// and the primitive column codecs: bit-width selection for bounded-range
// packing (spec.md §4.3), discriminant width selection (§4.4), and the
// zigzag bijection between signed and unsigned integers (glossary).
package bitwidth

import "math/bits"

// ForRange returns the number of bits needed to represent every value in
// [0, span] using a fixed-width binary encoding, i.e. ceil(log2(span+1)).
//
// ForRange(0) is 0: a column whose only possible value is its declared
// minimum carries no bits at all.
func ForRange(span uint64) int {
	if span == 0 {
		return 0
	}

	return bits.Len64(span)
}

// ForCount returns ceil(log2(n)) for n >= 1, and 0 for n <= 1. This is the
// discriminant width for a sum with n variants (spec.md §4.4).
func ForCount(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len64(uint64(n - 1))
}

// Zigzag maps a signed integer to an unsigned one so that small-magnitude
// values (positive or negative) map to small unsigned values: 0, -1, 1, -2,
// 2, ... becomes 0, 1, 2, 3, 4, ...
func Zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// Unzigzag inverts Zigzag.
func Unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// MaxBitsForWidth returns the number of bits a column element occupies for a
// given declared natural width in bytes-as-bits terms (8, 16, 32, 64).
func MaxBitsForWidth(natural int) int {
	return natural
}
