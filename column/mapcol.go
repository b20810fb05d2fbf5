package column

import "github.com/arlobytes/bitcode/bitbuf"

// MapWriter is the composite codec for a map field (spec.md §4.5: "Map |
// sequence of (key, value) pairs"): a length column of per-row entry
// counts, then a single flat pair column — itself columnized into "all
// keys, then all values" — holding every row's entries concatenated in
// iteration order.
type MapWriter[K comparable, V any] struct {
	seq *SequenceWriter[Pair[K, V]]
}

var _ Segment = (*MapWriter[int, int])(nil)

// NewMapWriter creates a map column writer backed by the given key and
// value column codecs.
func NewMapWriter[K comparable, V any](keys Writer[K], values Writer[V]) *MapWriter[K, V] {
	return &MapWriter[K, V]{seq: NewSequenceWriter[Pair[K, V]](NewPairWriter[K, V](keys, values))}
}

func (w *MapWriter[K, V]) Reserve(n int) { w.seq.Reserve(n) }

// Push appends one row's map value.
func (w *MapWriter[K, V]) Push(m map[K]V) {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	w.seq.Push(pairs)
}

func (w *MapWriter[K, V]) Len() int { return w.seq.Len() }

func (w *MapWriter[K, V]) Finish(bw *bitbuf.Writer) { w.seq.Finish(bw) }

// MapReader is the decode-side counterpart of MapWriter.
type MapReader[K comparable, V any] struct {
	seq *SequenceReader[Pair[K, V]]
}

// NewMapReader creates a map column reader backed by the given key and
// value column codecs. minBitsPerEntry is the smallest number of bits one
// (key, value) entry can occupy; pass 0 if no useful lower bound is known.
func NewMapReader[K comparable, V any](keys Reader[K], values Reader[V], minBitsPerEntry int) *MapReader[K, V] {
	return &MapReader[K, V]{
		seq: NewSequenceReader[Pair[K, V]](NewPairReader[K, V](keys, values), minBitsPerEntry),
	}
}

func (r *MapReader[K, V]) Parse(br *bitbuf.Reader, n int) error { return r.seq.Parse(br, n) }

// At returns the i-th row's decoded map value.
func (r *MapReader[K, V]) At(i int) map[K]V {
	pairs := r.seq.At(i)
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}

	return m
}

func (r *MapReader[K, V]) Len() int { return r.seq.Len() }
