package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// SequenceWriter is the composite codec for a variable-length array field
// (spec.md §4.5): one length column holding each row's element count,
// followed by a single flat element column holding every row's elements
// concatenated in row order. This is the columnar transpose applied
// recursively — a sequence-of-T field becomes "counts, then all the Ts".
type SequenceWriter[E any] struct {
	lengths LengthWriter
	elems   Writer[E]
}

var _ Segment = (*SequenceWriter[int])(nil)

// NewSequenceWriter creates a sequence column writer backed by elems, the
// column codec for the element type.
func NewSequenceWriter[E any](elems Writer[E]) *SequenceWriter[E] {
	return &SequenceWriter[E]{elems: elems}
}

func (w *SequenceWriter[E]) Reserve(n int) { w.lengths.Reserve(n) }
func (w *SequenceWriter[E]) Len() int      { return w.lengths.Len() }

// Push appends one row's sequence value.
func (w *SequenceWriter[E]) Push(seq []E) {
	w.lengths.Push(uint64(len(seq)))
	w.elems.Reserve(len(seq))
	for _, v := range seq {
		w.elems.Push(v)
	}
}

func (w *SequenceWriter[E]) Finish(bw *bitbuf.Writer) {
	w.lengths.Finish(bw)
	w.elems.Finish(bw)
}

// SequenceReader is the decode-side counterpart of SequenceWriter. Every
// row's length is checked against MaxLength (and, when minBitsPerElement is
// known and positive, against the bits actually remaining in the stream)
// before any element storage is allocated (spec.md Invariant 1, scenario
// S10): a corrupt or hostile huge length is rejected up front rather than
// causing an enormous allocation.
type SequenceReader[E any] struct {
	minBitsPerElement int

	offsets []int // len(offsets) == n+1; row i spans [offsets[i], offsets[i+1])
	elems   Reader[E]
}

// NewSequenceReader creates a sequence column reader backed by elems, the
// column codec for the element type. minBitsPerElement is the smallest
// number of bits any single element can physically occupy; pass 0 if no
// useful lower bound is known, which disables the remaining-bits refinement
// and relies on MaxLength alone.
func NewSequenceReader[E any](elems Reader[E], minBitsPerElement int) *SequenceReader[E] {
	return &SequenceReader[E]{elems: elems, minBitsPerElement: minBitsPerElement}
}

func (r *SequenceReader[E]) Parse(br *bitbuf.Reader, n int) error {
	maxPerRow := uint64(MaxLength)
	if r.minBitsPerElement > 0 {
		byBits := uint64(br.RemainingBits()) / uint64(r.minBitsPerElement)
		if byBits < maxPerRow {
			maxPerRow = byBits
		}
	}

	offsets := make([]int, n+1)
	var total uint64
	for i := 0; i < n; i++ {
		v, err := DecodeLength(br, uint64(MaxLength))
		if err != nil {
			return err
		}
		if v > maxPerRow {
			// More elements than the remaining bits could possibly hold.
			return errs.ErrEof
		}

		total += v
		if total > uint64(MaxLength) {
			return errs.ErrInvalid
		}

		offsets[i+1] = int(total)
	}

	if err := r.elems.Parse(br, int(total)); err != nil {
		return err
	}

	r.offsets = offsets

	return nil
}

// At returns the i-th row's decoded sequence value.
func (r *SequenceReader[E]) At(i int) []E {
	lo, hi := r.offsets[i], r.offsets[i+1]
	out := make([]E, hi-lo)
	for j := lo; j < hi; j++ {
		out[j-lo] = r.elems.At(j)
	}

	return out
}

func (r *SequenceReader[E]) Len() int { return len(r.offsets) - 1 }
