package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// BoxedWriter is the composite codec for a recursive field (spec.md §4.8,
// §9): each value is encoded into its own self-contained nested stream —
// a gamma-coded bit length, then that value's own column segments — rather
// than being flattened into the enclosing columns directly. This is what
// lets a type refer to itself: the nested stream's length lets decode skip
// or bound it without knowing the recursive type's shape in advance.
type BoxedWriter[T any] struct {
	newInner func() Writer[T]
	values   []T
}

var _ Writer[int] = (*BoxedWriter[int])(nil)

// NewBoxedWriter creates a boxed column writer. newInner must return a
// fresh column writer for T each time it is called: one nested stream, and
// therefore one inner writer, is built per pushed value.
func NewBoxedWriter[T any](newInner func() Writer[T]) *BoxedWriter[T] {
	return &BoxedWriter[T]{newInner: newInner}
}

func (w *BoxedWriter[T]) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]T, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

func (w *BoxedWriter[T]) Push(v T) { w.values = append(w.values, v) }
func (w *BoxedWriter[T]) Len() int { return len(w.values) }

func (w *BoxedWriter[T]) Finish(bw *bitbuf.Writer) {
	for _, v := range w.values {
		inner := bitbuf.NewWriter()

		iw := w.newInner()
		iw.Reserve(1)
		iw.Push(v)
		iw.Finish(inner)

		bitLen := inner.BitLen()
		payload := inner.Finish()

		EncodeLength(bw, uint64(bitLen))
		bw.WriteBitsFromBytes(payload, bitLen)
	}
}

// BoxedReader is the decode-side counterpart of BoxedWriter. It decodes
// each nested stream directly out of the enclosing Reader rather than
// copying it into a separate buffer first, so the recursion-depth counter
// EnterNested/ExitNested maintain lives on one shared Reader for the whole
// decode, regardless of how deep the boxed nesting goes.
type BoxedReader[T any] struct {
	newInner func() Reader[T]
	values   []T
}

var _ Reader[int] = (*BoxedReader[int])(nil)

// NewBoxedReader creates a boxed column reader. newInner must return a
// fresh column reader for T each time it is called.
func NewBoxedReader[T any](newInner func() Reader[T]) *BoxedReader[T] {
	return &BoxedReader[T]{newInner: newInner}
}

func (r *BoxedReader[T]) Parse(br *bitbuf.Reader, n int) error {
	// Every nested stream carries at least a one-bit gamma length.
	if n > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]T, n)

	for i := range values {
		bitLen, err := DecodeLength(br, ^uint64(0))
		if err != nil {
			return err
		}
		if bitLen > uint64(br.RemainingBits()) {
			return errs.ErrEof
		}

		if err := br.EnterNested(); err != nil {
			return err
		}

		before := br.RemainingBits()

		inner := r.newInner()
		if err := inner.Parse(br, 1); err != nil {
			br.ExitNested()

			return err
		}

		consumed := before - br.RemainingBits()
		br.ExitNested()

		if consumed != int(bitLen) {
			// A legitimate encoder's declared nested length always matches
			// what its own column segments actually occupy.
			return errs.ErrInvalid
		}

		values[i] = inner.At(0)
	}

	r.values = values

	return nil
}

func (r *BoxedReader[T]) At(i int) T { return r.values[i] }
func (r *BoxedReader[T]) Len() int   { return len(r.values) }
