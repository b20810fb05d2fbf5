// Package bitbuf implements the bottom layer of the bitcode columnar codec:
// a growable, byte-backed bit writer and a borrowing bit reader.
//
// # Bit order
//
// Bits are packed least-significant-bit first: bit 0 of byte 0 holds the
// first bit ever written. Both Writer and Reader accumulate bits in a
// 64-bit shift register so that unaligned multi-bit operations cost a
// handful of register ops rather than a byte-at-a-time loop; correctness
// does not depend on alignment, only performance does (spec.md §4.1).
//
// # Byte-aligned fast path
//
// WriteBytesAligned takes a fast path (a direct slice copy) whenever the
// writer's cursor sits on a byte boundary. ReadBytesAligned returns a direct
// sub-slice of the input whenever the reader's shift register holds no
// buffered bits. Both fall back to the bit-at-a-time path otherwise.
// Multi-byte integers written through
// WriteAlignedUint/ReadAlignedUint use little-endian byte order regardless
// of host byte order — this, like the LSB-first bit order, is a fixed,
// host-independent part of the wire format (spec.md §6), not a
// configuration choice.
//
// # Usage
//
// A Writer is built fresh for one top-level encode call and consumed by
// Finish, which flushes any partial trailing byte (zero-padded) and returns
// an owned byte slice. A Reader borrows its input slice for the lifetime of
// one top-level decode call; column.Boxed decodes nested streams out of the
// same Reader without copying them. The only bytes a Reader copies are the
// ones ReadBytesAligned assembles when it cannot return a sub-slice.
package bitbuf
