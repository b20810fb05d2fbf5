package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
	"github.com/arlobytes/bitcode/internal/bitwidth"
	"github.com/arlobytes/bitcode/internal/prefixcode"
)

// DiscWriter is the column codec for a sum type's tag (spec.md §4.4): by
// default a fixed ceil(log2 numVariants)-bit field (zero bits when there is
// only one variant), or, when a static frequency hint is supplied, a
// canonical prefix code built once from that hint and shared verbatim by
// encoder and decoder.
type DiscWriter struct {
	numVariants int
	hint        []uint32
	table       prefixcode.Table

	values []int
}

var _ Writer[int] = (*DiscWriter)(nil)

// NewDiscWriter creates a discriminant column writer for a sum of
// numVariants variants. hint, if non-nil, must have exactly numVariants
// entries giving each variant's static relative frequency; it opts the
// column into prefix coding instead of a fixed-width field.
func NewDiscWriter(numVariants int, hint []uint32) *DiscWriter {
	w := &DiscWriter{numVariants: numVariants, hint: hint}
	if hint != nil {
		w.table = prefixcode.Build(hint)
	}

	return w
}

func (w *DiscWriter) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]int, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

// Push appends one variant index, 0 <= v < numVariants.
func (w *DiscWriter) Push(v int) { w.values = append(w.values, v) }
func (w *DiscWriter) Len() int   { return len(w.values) }

func (w *DiscWriter) Finish(bw *bitbuf.Writer) {
	if w.hint != nil {
		for _, v := range w.values {
			prefixcode.Encode(bw, w.table, v)
		}

		return
	}

	width := bitwidth.ForCount(w.numVariants)
	for _, v := range w.values {
		bw.WriteBits(uint64(v), width)
	}
}

// DiscReader is the decode-side counterpart of DiscWriter. hint must be the
// exact same frequency vector (or nil) the writer used: the prefix table is
// schema, not wire state, so it is never itself present in the stream.
type DiscReader struct {
	numVariants int
	hint        []uint32
	table       prefixcode.Table

	values []int
}

var _ Reader[int] = (*DiscReader)(nil)

// NewDiscReader creates a discriminant column reader for a sum of
// numVariants variants, with the same optional frequency hint the writer
// was constructed with.
func NewDiscReader(numVariants int, hint []uint32) *DiscReader {
	r := &DiscReader{numVariants: numVariants, hint: hint}
	if hint != nil {
		r.table = prefixcode.Build(hint)
	}

	return r
}

func (r *DiscReader) Parse(br *bitbuf.Reader, n int) error {
	// Fixed-width tags take ForCount bits each; prefix codes at least one.
	minBits := bitwidth.ForCount(r.numVariants)
	if r.hint != nil && minBits > 0 {
		minBits = 1
	}
	if n*minBits > br.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]int, n)

	if r.hint != nil {
		for i := range values {
			v, err := prefixcode.Decode(br, r.table)
			if err != nil {
				return err
			}
			values[i] = v
		}
	} else {
		width := bitwidth.ForCount(r.numVariants)
		for i := range values {
			raw, err := br.ReadBits(width)
			if err != nil {
				return err
			}
			if int(raw) >= r.numVariants {
				return errs.ErrInvalid
			}
			values[i] = int(raw)
		}
	}

	r.values = values

	return nil
}

func (r *DiscReader) At(i int) int { return r.values[i] }
func (r *DiscReader) Len() int     { return len(r.values) }
