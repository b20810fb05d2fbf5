package column

import (
	"math"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// Float columns carry the IEEE 754 bit pattern of each value at its natural
// fixed width with no header (spec.md §3): there is no meaningful range to
// exploit for floats the way there is for integers, so every value is
// written through the byte-aligned fast path when the column happens to
// start on a byte boundary, falling back to the bit-at-a-time path
// otherwise — mirrors mebo's NumericRawEncoder/NumericRawDecoder, which
// uses the same direct-bit-pattern strategy for float64 columns.

// --- Float32 -----------------------------------------------------------

// Float32Writer is the column codec for float32.
type Float32Writer struct {
	values []float32
}

var _ Writer[float32] = (*Float32Writer)(nil)

// NewFloat32Writer creates an empty float32 column writer.
func NewFloat32Writer() *Float32Writer { return &Float32Writer{} }

func (w *Float32Writer) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]float32, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

func (w *Float32Writer) Push(v float32) { w.values = append(w.values, v) }
func (w *Float32Writer) Len() int       { return len(w.values) }

func (w *Float32Writer) Finish(bw *bitbuf.Writer) {
	for _, v := range w.values {
		bw.WriteAlignedUint(uint64(math.Float32bits(v)), 4)
	}
}

// Float32Reader is the decode-side counterpart of Float32Writer.
type Float32Reader struct {
	values []float32
}

var _ Reader[float32] = (*Float32Reader)(nil)

// NewFloat32Reader creates an empty float32 column reader.
func NewFloat32Reader() *Float32Reader { return &Float32Reader{} }

func (r *Float32Reader) Parse(br *bitbuf.Reader, n int) error {
	if n*32 > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]float32, n)
	for i := range values {
		bits, err := br.ReadAlignedUint(4)
		if err != nil {
			return err
		}
		values[i] = math.Float32frombits(uint32(bits))
	}
	r.values = values

	return nil
}

func (r *Float32Reader) At(i int) float32 { return r.values[i] }
func (r *Float32Reader) Len() int         { return len(r.values) }

// --- Float64 -----------------------------------------------------------

// Float64Writer is the column codec for float64.
type Float64Writer struct {
	values []float64
}

var _ Writer[float64] = (*Float64Writer)(nil)

// NewFloat64Writer creates an empty float64 column writer.
func NewFloat64Writer() *Float64Writer { return &Float64Writer{} }

func (w *Float64Writer) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]float64, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

func (w *Float64Writer) Push(v float64) { w.values = append(w.values, v) }
func (w *Float64Writer) Len() int       { return len(w.values) }

func (w *Float64Writer) Finish(bw *bitbuf.Writer) {
	for _, v := range w.values {
		bw.WriteAlignedUint(math.Float64bits(v), 8)
	}
}

// Float64Reader is the decode-side counterpart of Float64Writer.
type Float64Reader struct {
	values []float64
}

var _ Reader[float64] = (*Float64Reader)(nil)

// NewFloat64Reader creates an empty float64 column reader.
func NewFloat64Reader() *Float64Reader { return &Float64Reader{} }

func (r *Float64Reader) Parse(br *bitbuf.Reader, n int) error {
	if n*64 > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]float64, n)
	for i := range values {
		bits, err := br.ReadAlignedUint(8)
		if err != nil {
			return err
		}
		values[i] = math.Float64frombits(bits)
	}
	r.values = values

	return nil
}

func (r *Float64Reader) At(i int) float64 { return r.values[i] }
func (r *Float64Reader) Len() int         { return len(r.values) }
