package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// maxScalar is the highest valid Unicode scalar value.
const maxScalar = 0x10FFFF

// surrogateLo and surrogateHi bound the UTF-16 surrogate range, which is
// never a valid Unicode scalar value on its own (spec.md §4.9 supplement).
const (
	surrogateLo = 0xD800
	surrogateHi = 0xDFFF
)

func isValidScalar(v uint32) bool {
	if v > maxScalar {
		return false
	}

	return v < surrogateLo || v > surrogateHi
}

// CharWriter is the column codec for a Unicode scalar value column
// (spec.md §3: "Char | unsigned 32 | fixed natural width"). Scalars are
// always stored as a plain 32-bit field with no header: no bounded-range
// packing is applied, even though every valid scalar fits in 21 bits.
// Front-loaded validation in CharReader rejects values that are not valid
// scalars.
type CharWriter struct {
	values []rune
}

var _ Writer[rune] = (*CharWriter)(nil)

// NewCharWriter creates an empty char column writer.
func NewCharWriter() *CharWriter { return &CharWriter{} }

func (w *CharWriter) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]rune, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

// Push appends one scalar value. The caller is responsible for pushing only
// valid Unicode scalar values; Finish does not re-validate its own input.
func (w *CharWriter) Push(v rune) { w.values = append(w.values, v) }
func (w *CharWriter) Len() int    { return len(w.values) }

func (w *CharWriter) Finish(bw *bitbuf.Writer) {
	for _, v := range w.values {
		bw.WriteBits(uint64(uint32(v)), 32)
	}
}

// CharReader is the decode-side counterpart of CharWriter. Parse rejects
// any value outside the valid Unicode scalar range, including the
// surrogate block, before returning.
type CharReader struct {
	values []rune
}

var _ Reader[rune] = (*CharReader)(nil)

// NewCharReader creates an empty char column reader.
func NewCharReader() *CharReader { return &CharReader{} }

func (r *CharReader) Parse(br *bitbuf.Reader, n int) error {
	if n*32 > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]rune, n)
	for i := range values {
		raw, err := br.ReadBits(32)
		if err != nil {
			return err
		}
		v := uint32(raw)
		if !isValidScalar(v) {
			return errs.ErrInvalid
		}
		values[i] = rune(v)
	}
	r.values = values

	return nil
}

func (r *CharReader) At(i int) rune { return r.values[i] }
func (r *CharReader) Len() int      { return len(r.values) }
