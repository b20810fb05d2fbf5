package column

import "github.com/arlobytes/bitcode/bitbuf"

// Int128 is a signed 128-bit integer in two's complement, represented as a
// signed high limb and an unsigned low limb since Go has no native 128-bit
// integer type.
type Int128 struct {
	Hi int64
	Lo uint64
}

// zigzag128 generalizes bitwidth.Zigzag's (v<<1)^(v>>63) to 128 bits: v>>127
// (arithmetic) is all-ones if v is negative and all-zero otherwise, so a
// single mask replicated across both limbs stands in for the 128-bit
// arithmetic shift.
func zigzag128(v Int128) Uint128 {
	shiftedLo := v.Lo << 1
	shiftedHi := (uint64(v.Hi) << 1) | (v.Lo >> 63)

	var mask uint64
	if v.Hi < 0 {
		mask = ^uint64(0)
	}

	return Uint128{Hi: shiftedHi ^ mask, Lo: shiftedLo ^ mask}
}

// unzigzag128 inverts zigzag128.
func unzigzag128(u Uint128) Int128 {
	var mask uint64
	if u.Lo&1 == 1 {
		mask = ^uint64(0)
	}

	shiftedLo := (u.Lo >> 1) | (u.Hi << 63)
	shiftedHi := u.Hi >> 1

	return Int128{Hi: int64(shiftedHi ^ mask), Lo: shiftedLo ^ mask}
}

// Int128Writer is the column codec for Int128. It reuses uint128Core
// verbatim after zigzag-folding each value, the same way Int8/16/32/64 reuse
// uintCore (spec.md §4.3: "For signed integers, zigzag is applied before
// range reduction").
type Int128Writer struct{ core uint128Core }

var _ Writer[Int128] = (*Int128Writer)(nil)

// NewInt128Writer creates an Int128 column writer.
func NewInt128Writer() *Int128Writer { return &Int128Writer{} }

func (w *Int128Writer) Reserve(n int)  { w.core.reserve(n) }
func (w *Int128Writer) Push(v Int128)  { w.core.push(zigzag128(v)) }
func (w *Int128Writer) Len() int       { return w.core.length() }
func (w *Int128Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Int128Reader is the decode-side counterpart of Int128Writer.
type Int128Reader struct{ core uint128CoreReader }

var _ Reader[Int128] = (*Int128Reader)(nil)

// NewInt128Reader creates an Int128 column reader.
func NewInt128Reader() *Int128Reader { return &Int128Reader{} }

func (r *Int128Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Int128Reader) At(i int) Int128                      { return unzigzag128(r.core.at(i)) }
func (r *Int128Reader) Len() int                             { return r.core.length() }
