package column

import "github.com/arlobytes/bitcode/bitbuf"

// OptionalWriter is the composite codec for an optional field (spec.md
// §4.5: "Optional | sum of 2 (none, some)"). It is a dedicated
// specialization of Sum rather than an instantiation of SumWriter: with
// exactly two variants there is no tag function or variant slice to thread
// through, just a presence bit and a payload column holding only the
// present values.
type OptionalWriter[T any] struct {
	present *BoolWriter
	payload Writer[T]
}

var _ Writer[*int] = (*OptionalWriter[int])(nil)

// NewOptionalWriter creates an optional column writer backed by payload,
// the column codec for the wrapped type.
func NewOptionalWriter[T any](payload Writer[T]) *OptionalWriter[T] {
	return &OptionalWriter[T]{present: NewBoolWriter(), payload: payload}
}

func (w *OptionalWriter[T]) Reserve(n int) { w.present.Reserve(n) }
func (w *OptionalWriter[T]) Len() int      { return w.present.Len() }

// Push appends one row's optional value: a nil v encodes "none", a non-nil
// v encodes "some" with *v as the payload.
func (w *OptionalWriter[T]) Push(v *T) {
	w.present.Push(v != nil)
	if v != nil {
		w.payload.Push(*v)
	}
}

func (w *OptionalWriter[T]) Finish(bw *bitbuf.Writer) {
	w.present.Finish(bw)
	w.payload.Finish(bw)
}

// OptionalReader is the decode-side counterpart of OptionalWriter.
type OptionalReader[T any] struct {
	present *BoolReader
	payload Reader[T]

	// localIndex[i] is the row's position in the payload column, valid only
	// when present.At(i) is true.
	localIndex []int
}

var _ Reader[*int] = (*OptionalReader[int])(nil)

// NewOptionalReader creates an optional column reader backed by payload,
// the column codec for the wrapped type.
func NewOptionalReader[T any](payload Reader[T]) *OptionalReader[T] {
	return &OptionalReader[T]{present: NewBoolReader(), payload: payload}
}

func (r *OptionalReader[T]) Parse(br *bitbuf.Reader, n int) error {
	if err := r.present.Parse(br, n); err != nil {
		return err
	}

	localIndex := make([]int, n)
	count := 0
	for i := 0; i < n; i++ {
		if r.present.At(i) {
			localIndex[i] = count
			count++
		}
	}

	if err := r.payload.Parse(br, count); err != nil {
		return err
	}

	r.localIndex = localIndex

	return nil
}

// At returns the i-th row's decoded optional value: nil for "none", or a
// pointer to the decoded payload for "some".
func (r *OptionalReader[T]) At(i int) *T {
	if !r.present.At(i) {
		return nil
	}

	v := r.payload.At(r.localIndex[i])

	return &v
}

func (r *OptionalReader[T]) Len() int { return r.present.Len() }
