package column

import (
	"math/bits"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// uint128HeaderWidthBits is the fixed field width used to store a 128-bit
// column's chosen packed width (0..128 needs 8 bits, one more than the
// 7-bit field uintCore uses for widths up to 64).
const uint128HeaderWidthBits = 8

// Uint128 is an unsigned 128-bit integer, represented as two uint64 limbs
// since Go has no native 128-bit integer type (spec.md's primitive type
// table names "Unsigned int (8/16/32/64/128)"). Hi holds the high 64 bits,
// Lo the low 64 bits.
type Uint128 struct {
	Hi, Lo uint64
}

func (u Uint128) less(v Uint128) bool {
	if u.Hi != v.Hi {
		return u.Hi < v.Hi
	}

	return u.Lo < v.Lo
}

func (u Uint128) sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)

	return Uint128{Hi: hi, Lo: lo}
}

func (u Uint128) add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)

	return Uint128{Hi: hi, Lo: lo}
}

// bitLen returns ceil(log2(u+1)), the number of bits needed to hold u, or 0
// if u is zero.
func (u Uint128) bitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}

	return bits.Len64(u.Lo)
}

// writeUint128 writes the low width bits of v (0 <= width <= 128), low limb
// first.
func writeUint128(w *bitbuf.Writer, v Uint128, width int) {
	if width <= 64 {
		w.WriteBits(v.Lo, width)

		return
	}

	w.WriteBits(v.Lo, 64)
	w.WriteBits(v.Hi, width-64)
}

// readUint128 reads width bits (0 <= width <= 128) into a Uint128, low limb
// first.
func readUint128(r *bitbuf.Reader, width int) (Uint128, error) {
	if width <= 64 {
		v, err := r.ReadBits(width)
		if err != nil {
			return Uint128{}, err
		}

		return Uint128{Lo: v}, nil
	}

	lo, err := r.ReadBits(64)
	if err != nil {
		return Uint128{}, err
	}

	hi, err := r.ReadBits(width - 64)
	if err != nil {
		return Uint128{}, err
	}

	return Uint128{Hi: hi, Lo: lo}, nil
}

// uint128Core is the shared bounded-range 128-bit-integer column codec
// behind Uint128Writer/Reader (spec.md §4.3, extended to the 128-bit width).
// It packs the same way as uintCore's range mode — each value stored as
// v-lo in ceil(log2(hi-lo+1)) bits, where lo/hi are the minimum and maximum
// values actually pushed — but offers no gamma alternative: internal/gamma
// codes a single uint64 magnitude, and the columns this width targets (wide
// identifiers, hashes, UUID halves) don't cluster near a small value the
// way gamma mode is meant to exploit.
type uint128Core struct {
	values []Uint128
}

func (c *uint128Core) reserve(n int) {
	if cap(c.values)-len(c.values) < n {
		next := make([]Uint128, len(c.values), len(c.values)+n)
		copy(next, c.values)
		c.values = next
	}
}

func (c *uint128Core) push(v Uint128) { c.values = append(c.values, v) }
func (c *uint128Core) length() int    { return len(c.values) }

func (c *uint128Core) finish(w *bitbuf.Writer) {
	var lo, hi Uint128
	if len(c.values) > 0 {
		lo, hi = c.values[0], c.values[0]
		for _, v := range c.values[1:] {
			if v.less(lo) {
				lo = v
			}
			if hi.less(v) {
				hi = v
			}
		}
	}

	width := hi.sub(lo).bitLen()

	w.WriteBits(uint64(width), uint128HeaderWidthBits)
	writeUint128(w, lo, 128)

	for _, v := range c.values {
		writeUint128(w, v.sub(lo), width)
	}
}

// uint128CoreReader is the decode-side counterpart of uint128Core.
type uint128CoreReader struct {
	lo    Uint128
	width int

	values []Uint128
}

func (c *uint128CoreReader) parse(r *bitbuf.Reader, n int) error {
	widthBits, err := r.ReadBits(uint128HeaderWidthBits)
	if err != nil {
		return err
	}
	width := int(widthBits)
	if width < 0 || width > 128 {
		// A legitimately produced column never needs more than 128 bits per
		// value; a wider claim is corrupt.
		return errs.ErrInvalid
	}

	lo, err := readUint128(r, 128)
	if err != nil {
		return err
	}

	if width > 0 {
		maxDiff := maxDiffForWidth(width)

		_, carry := bits.Add64(lo.Lo, maxDiff.Lo, 0)
		_, overflow := bits.Add64(lo.Hi, maxDiff.Hi, carry)
		if overflow != 0 {
			// The widest value this header permits would overflow 128 bits;
			// no legitimate encoder emits this.
			return errs.ErrInvalid
		}
	}

	footprint := n * width
	if footprint > r.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]Uint128, n)
	for i := range values {
		diff, err := readUint128(r, width)
		if err != nil {
			return err
		}
		values[i] = lo.add(diff)
	}

	c.lo = lo
	c.width = width
	c.values = values

	return nil
}

// maxDiffForWidth returns 2^width - 1 as a Uint128, for 1 <= width <= 128.
func maxDiffForWidth(width int) Uint128 {
	if width <= 64 {
		return Uint128{Lo: (uint64(1) << uint(width)) - 1}
	}

	// (1<<64)-1 wraps to ^uint64(0) for width==128, which is exactly right:
	// all 64 high-limb bits are settable.
	return Uint128{Hi: (uint64(1) << uint(width-64)) - 1, Lo: ^uint64(0)}
}

func (c *uint128CoreReader) at(i int) Uint128 { return c.values[i] }
func (c *uint128CoreReader) length() int      { return len(c.values) }

// --- Uint128 ---------------------------------------------------------------

// Uint128Writer is the column codec for Uint128.
type Uint128Writer struct{ core uint128Core }

var _ Writer[Uint128] = (*Uint128Writer)(nil)

// NewUint128Writer creates a Uint128 column writer.
func NewUint128Writer() *Uint128Writer { return &Uint128Writer{} }

func (w *Uint128Writer) Reserve(n int)            { w.core.reserve(n) }
func (w *Uint128Writer) Push(v Uint128)           { w.core.push(v) }
func (w *Uint128Writer) Len() int                 { return w.core.length() }
func (w *Uint128Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Uint128Reader is the decode-side counterpart of Uint128Writer.
type Uint128Reader struct{ core uint128CoreReader }

var _ Reader[Uint128] = (*Uint128Reader)(nil)

// NewUint128Reader creates a Uint128 column reader.
func NewUint128Reader() *Uint128Reader { return &Uint128Reader{} }

func (r *Uint128Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Uint128Reader) At(i int) Uint128                     { return r.core.at(i) }
func (r *Uint128Reader) Len() int                             { return r.core.length() }
