package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// BoolWriter is the column codec for bool: one packed bit per value, no
// header (spec.md §3 primitive type table).
type BoolWriter struct {
	values []bool
}

var _ Writer[bool] = (*BoolWriter)(nil)

// NewBoolWriter creates an empty bool column writer.
func NewBoolWriter() *BoolWriter {
	return &BoolWriter{}
}

// Reserve pre-sizes the staging slice for n values.
func (w *BoolWriter) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]bool, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

// Push appends one bool value.
func (w *BoolWriter) Push(v bool) {
	w.values = append(w.values, v)
}

// Len returns the number of values pushed.
func (w *BoolWriter) Len() int { return len(w.values) }

// Finish packs every pushed value as a single bit, in push order.
func (w *BoolWriter) Finish(bw *bitbuf.Writer) {
	for _, v := range w.values {
		bw.WriteBit(v)
	}
}

// BoolReader parses and validates a bool column. Every bit value is a valid
// bool, so there is nothing to reject beyond running out of input.
type BoolReader struct {
	values []bool
}

var _ Reader[bool] = (*BoolReader)(nil)

// NewBoolReader creates an empty bool column reader.
func NewBoolReader() *BoolReader {
	return &BoolReader{}
}

// Parse reads n packed bits and validates the column in full.
func (r *BoolReader) Parse(br *bitbuf.Reader, n int) error {
	if n > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]bool, n)
	for i := range values {
		bit, err := br.ReadBits(1)
		if err != nil {
			return err
		}
		values[i] = bit == 1
	}
	r.values = values

	return nil
}

// At returns the i-th decoded bool.
func (r *BoolReader) At(i int) bool { return r.values[i] }

// Len returns the column's value count.
func (r *BoolReader) Len() int { return len(r.values) }
