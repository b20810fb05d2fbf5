package column

import "github.com/arlobytes/bitcode/bitbuf"

// Sum is the composite codec for a tagged union (spec.md §4.5, §4.4): one
// discriminant column selecting which of numVariants payload columns a row
// belongs to, followed by each payload column in variant order, each
// holding only the rows tagged for that variant — "per-variant columns
// whose lengths sum to n", per the column-order rule.
//
// Derive/codegen is explicitly out of scope (spec.md Non-goals), so Go's
// type system has no way to enumerate a sum type's variants for you. A
// VariantWriter/VariantReader pair stands in for what a derive macro would
// generate: a closure pair binding one concrete payload type P to the
// shared union type S.

// VariantWriter binds one sum variant's payload column to the union type S
// via an extractor closure.
type VariantWriter[S any] struct {
	push   func(S)
	finish func(*bitbuf.Writer)
}

// NewVariantWriter builds a VariantWriter from a payload column writer and
// a function that extracts this variant's payload out of a union value.
// extract is only ever called on values already tagged for this variant.
func NewVariantWriter[S, P any](w Writer[P], extract func(S) P) VariantWriter[S] {
	return VariantWriter[S]{
		push:   func(s S) { w.Push(extract(s)) },
		finish: w.Finish,
	}
}

// SumWriter is the sum column writer driven by a caller-supplied tag
// function and one VariantWriter per variant, in variant (discriminant)
// order.
type SumWriter[S any] struct {
	tag      func(S) int
	disc     *DiscWriter
	variants []VariantWriter[S]
}

var _ Writer[int] = (*SumWriter[int])(nil)

// NewSumWriter creates a sum column writer. tag returns the variant index
// (0 <= tag(s) < len(variants)) a union value belongs to; hint, if
// non-nil, opts the discriminant into frequency-hinted prefix coding.
func NewSumWriter[S any](tag func(S) int, hint []uint32, variants ...VariantWriter[S]) *SumWriter[S] {
	return &SumWriter[S]{
		tag:      tag,
		disc:     NewDiscWriter(len(variants), hint),
		variants: variants,
	}
}

func (w *SumWriter[S]) Reserve(n int) { w.disc.Reserve(n) }
func (w *SumWriter[S]) Len() int      { return w.disc.Len() }

// Push appends one union value, routing its payload to the variant tag(s)
// selects.
func (w *SumWriter[S]) Push(s S) {
	t := w.tag(s)
	w.disc.Push(t)
	w.variants[t].push(s)
}

func (w *SumWriter[S]) Finish(bw *bitbuf.Writer) {
	w.disc.Finish(bw)
	for _, v := range w.variants {
		v.finish(bw)
	}
}

// VariantReader binds one sum variant's payload column back into the union
// type S via a constructor closure.
type VariantReader[S any] struct {
	parse func(r *bitbuf.Reader, n int) error
	build func(localIndex int) S
}

// NewVariantReader builds a VariantReader from a payload column reader and
// a function that wraps a decoded payload back into a union value.
func NewVariantReader[S, P any](r Reader[P], build func(P) S) VariantReader[S] {
	return VariantReader[S]{
		parse: r.Parse,
		build: func(i int) S { return build(r.At(i)) },
	}
}

// SumReader is the decode-side counterpart of SumWriter.
type SumReader[S any] struct {
	disc     *DiscReader
	variants []VariantReader[S]

	tags       []int
	localIndex []int
}

var _ Reader[int] = (*SumReader[int])(nil)

// NewSumReader creates a sum column reader. hint must match the one the
// writer used (or be nil if the writer used none).
func NewSumReader[S any](hint []uint32, variants ...VariantReader[S]) *SumReader[S] {
	return &SumReader[S]{
		disc:     NewDiscReader(len(variants), hint),
		variants: variants,
	}
}

func (r *SumReader[S]) Parse(br *bitbuf.Reader, n int) error {
	if err := r.disc.Parse(br, n); err != nil {
		return err
	}

	counts := make([]int, len(r.variants))
	tags := make([]int, n)
	localIndex := make([]int, n)
	for i := 0; i < n; i++ {
		t := r.disc.At(i)
		tags[i] = t
		localIndex[i] = counts[t]
		counts[t]++
	}

	for k, v := range r.variants {
		if err := v.parse(br, counts[k]); err != nil {
			return err
		}
	}

	r.tags = tags
	r.localIndex = localIndex

	return nil
}

// At returns the i-th union value, rebuilt from whichever variant its tag
// selects.
func (r *SumReader[S]) At(i int) S {
	t := r.tags[i]

	return r.variants[t].build(r.localIndex[i])
}

func (r *SumReader[S]) Len() int { return len(r.tags) }
