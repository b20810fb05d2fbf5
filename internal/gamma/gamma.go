// Package gamma implements Elias-gamma coding (spec.md §4.2), the
// variable-length prefix code bitcode uses for sequence/string lengths,
// occurrence counts, and opt-in small unsigned integers.
//
// Small values get very short codes, which biases the stream toward long
// runs of zero high-order bits — exactly the redundancy a general-purpose
// compressor (Deflate/LZ4/Zstd) downstream of bitcode can exploit.
package gamma

import (
	"math/bits"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// maxLeadingZeros bounds the run of zero bits Decode will tolerate before
// giving up on a corrupt stream. It is the width of a uint64: x < 2^64-1
// needs at most 63 leading zeros (x+1 <= 2^64-1), and x = 2^64-1 needs
// exactly 64 (x+1 = 2^64); one more than that can only be a malformed or
// hostile input.
const maxLeadingZeros = 64

// Encode writes x (x >= 0) as a gamma code: k = floor(log2(x+1)) zero bits,
// then the (k+1)-bit binary representation of x+1, most-significant bit
// first.
func Encode(w *bitbuf.Writer, x uint64) {
	n := x + 1
	if n == 0 {
		// x = 2^64-1: x+1 = 2^64 wraps to 0 in a uint64, so its code is
		// written directly: 64 zero bits, a 1, then 64 zero bits.
		w.WriteBits(0, 64)
		w.WriteBit(true)
		w.WriteBits(0, 64)

		return
	}
	k := bits.Len64(n) - 1

	w.WriteBits(0, k)

	for i := k; i >= 0; i-- {
		w.WriteBit((n>>uint(i))&1 == 1)
	}
}

// Decode reads a gamma code and returns x. It fails with errs.ErrEof if the
// stream ends early, and with errs.ErrInvalid if the leading-zero run
// exceeds maxLeadingZeros or if the decoded value exceeds maxValue (the
// caller's declared upper bound, e.g. a sequence's hard length cap).
func Decode(r *bitbuf.Reader, maxValue uint64) (uint64, error) {
	k := 0
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}

		k++
		if k > maxLeadingZeros {
			return 0, errs.ErrInvalid
		}
	}

	n := uint64(1)
	for range k {
		bit, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		n = (n << 1) | bit
	}

	if k == maxLeadingZeros && n != 0 {
		// After 64 body bits the leading 1 has been shifted out of n; only
		// an all-zero body (x+1 = 2^64) names a value that fits a uint64.
		return 0, errs.ErrInvalid
	}

	value := n - 1
	if value > maxValue {
		return 0, errs.ErrInvalid
	}

	return value, nil
}
