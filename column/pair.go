package column

import "github.com/arlobytes/bitcode/bitbuf"

// Pair is the element type a Map column transposes into: spec.md §4.5
// treats Map as a sequence of (key, value) pairs, and a pair is itself a
// two-field product, columnized as "all keys, then all values" rather than
// interleaved key/value/key/value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairWriter is the element codec a Map's underlying SequenceWriter uses:
// it is not itself a Segment registered directly in a row, only ever
// nested inside a sequence.
type PairWriter[K, V any] struct {
	keys   Writer[K]
	values Writer[V]
}

var _ Writer[Pair[int, int]] = (*PairWriter[int, int])(nil)

// NewPairWriter creates a pair element codec backed by the given key and
// value column codecs.
func NewPairWriter[K, V any](keys Writer[K], values Writer[V]) *PairWriter[K, V] {
	return &PairWriter[K, V]{keys: keys, values: values}
}

func (w *PairWriter[K, V]) Reserve(n int) {
	w.keys.Reserve(n)
	w.values.Reserve(n)
}

func (w *PairWriter[K, V]) Push(p Pair[K, V]) {
	w.keys.Push(p.Key)
	w.values.Push(p.Value)
}

func (w *PairWriter[K, V]) Len() int { return w.keys.Len() }

func (w *PairWriter[K, V]) Finish(bw *bitbuf.Writer) {
	w.keys.Finish(bw)
	w.values.Finish(bw)
}

// PairReader is the decode-side counterpart of PairWriter.
type PairReader[K, V any] struct {
	keys   Reader[K]
	values Reader[V]
}

var _ Reader[Pair[int, int]] = (*PairReader[int, int])(nil)

// NewPairReader creates a pair element codec backed by the given key and
// value column codecs.
func NewPairReader[K, V any](keys Reader[K], values Reader[V]) *PairReader[K, V] {
	return &PairReader[K, V]{keys: keys, values: values}
}

func (r *PairReader[K, V]) Parse(br *bitbuf.Reader, n int) error {
	if err := r.keys.Parse(br, n); err != nil {
		return err
	}

	return r.values.Parse(br, n)
}

func (r *PairReader[K, V]) At(i int) Pair[K, V] {
	return Pair[K, V]{Key: r.keys.At(i), Value: r.values.At(i)}
}

func (r *PairReader[K, V]) Len() int { return r.keys.Len() }
