package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
	"github.com/arlobytes/bitcode/internal/gamma"
)

// MaxLength is the hard upper bound on any single length or occurrence count
// (spec.md Invariant 1): no sequence, string, or map may claim more than
// 2^29-1 elements, regardless of how much input remains. Composite codecs
// additionally narrow this against the bits actually remaining in the
// stream before allocating a backing slice (spec.md scenario S10).
const MaxLength = 1<<29 - 1

// EncodeLength writes a single length/count value as a gamma code. It is
// used both by the Length column below and directly by composite codecs
// (Sequence, ByteString, TextString, Map) to write their own occurrence
// count ahead of their element columns.
func EncodeLength(w *bitbuf.Writer, n uint64) {
	gamma.Encode(w, n)
}

// DecodeLength reads a single gamma-coded length/count value, rejecting
// anything above maxValue with errs.ErrInvalid. SequenceReader passes
// MaxLength here and then rejects a length above
// remaining_bits/min_bits_per_element with errs.ErrEof itself, so a corrupt
// or hostile huge length is rejected before any allocation.
func DecodeLength(r *bitbuf.Reader, maxValue uint64) (uint64, error) {
	return gamma.Decode(r, maxValue)
}

// LengthWriter is the column codec for a column of independent length/count
// values (spec.md §3 primitive type table: "Length/count | gamma | none").
// Unlike Uint columns, a length column has no packed-range mode: small
// counts are overwhelmingly common, so gamma coding is used unconditionally.
type LengthWriter struct {
	values []uint64
}

var _ Writer[uint64] = (*LengthWriter)(nil)

// NewLengthWriter creates an empty length column writer.
func NewLengthWriter() *LengthWriter { return &LengthWriter{} }

func (w *LengthWriter) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]uint64, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

func (w *LengthWriter) Push(v uint64) { w.values = append(w.values, v) }
func (w *LengthWriter) Len() int      { return len(w.values) }

func (w *LengthWriter) Finish(bw *bitbuf.Writer) {
	for _, v := range w.values {
		EncodeLength(bw, v)
	}
}

// LengthReader is the decode-side counterpart of LengthWriter. Every decoded
// value is bounded by MaxLength; callers needing a tighter, stream-relative
// bound per value should call DecodeLength directly instead of using this
// column type.
type LengthReader struct {
	values []uint64
}

var _ Reader[uint64] = (*LengthReader)(nil)

// NewLengthReader creates an empty length column reader.
func NewLengthReader() *LengthReader { return &LengthReader{} }

func (r *LengthReader) Parse(br *bitbuf.Reader, n int) error {
	// Every gamma code is at least one bit long.
	if n > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]uint64, n)
	for i := range values {
		v, err := DecodeLength(br, MaxLength)
		if err != nil {
			return err
		}
		values[i] = v
	}
	r.values = values

	return nil
}

func (r *LengthReader) At(i int) uint64 { return r.values[i] }
func (r *LengthReader) Len() int        { return len(r.values) }
