// Package column implements the primitive and composite column codecs that
// sit above bitbuf: one codec per semantic type from spec.md §3, each
// exposing the same small capability surface (reserve / push / finalize,
// and the inverse parse+validate / random-access) so composite codecs can be
// built as generic combinators over whichever child codec their element
// type calls for, exactly as spec.md §6 describes the derive/visitor
// collaborators' target surface.
//
// Primitive codecs (bool.go, uint.go, int.go, float.go, length.go,
// discriminant.go, char.go) write and read a single flat column. Composite
// codecs (sequence.go, bytestring.go, textstring.go, optional.go, sum.go,
// mapcol.go, recursive.go) own one or more child column codecs and
// implement the columnar transpose of spec.md §4.5: every child is
// finalized, in fixed textual order, only after all of its values have been
// pushed.
package column

import "github.com/arlobytes/bitcode/bitbuf"

// Writer is the encoder capability of spec.md §6 (§6.1: reserve, push a
// value N times, then finalize). A Writer accumulates exactly the values
// pushed since construction; Finish must be called exactly once, after
// which the Writer is no longer usable.
type Writer[T any] interface {
	// Reserve hints the number of values that will be pushed, so column
	// state can pre-size its staging storage. It is always safe to push
	// more or fewer values than reserved.
	Reserve(n int)

	// Push appends one value to the column.
	Push(v T)

	// Len returns the number of values pushed so far.
	Len() int

	// Finish computes the column's header (widths, modes, lengths) from
	// the values observed since construction, then writes header and body
	// into w in that order. After Finish, the Writer must not be reused.
	Finish(w *bitbuf.Writer)
}

// Reader is the decoder capability of spec.md §6 (§6.2: populate a column
// of n values, validating it in full before any value is exposed, then
// serve decode_in_place-style random access). n is the number of values in
// this column's own occurrence space, which for a field nested inside a sum
// variant may be less than the enclosing composite's occurrence count
// (spec.md §4.5: "per-variant columns whose lengths ... sum to n").
type Reader[T any] interface {
	// Parse reads and front-loads-validates a column of n values: it reads
	// the header, bounds-checks the body's bit footprint against the
	// remaining input, and validates every discriminant and bounded scalar
	// in the body before returning. No partially-validated value is ever
	// observable by the caller (spec.md Invariant 5).
	Parse(r *bitbuf.Reader, n int) error

	// At returns the i-th validated value (0 <= i < n as passed to Parse).
	// At never fails: all validation already happened in Parse.
	At(i int) T

	// Len returns the n this Reader was Parse'd with.
	Len() int
}

// Segment is satisfied by every Writer[T] value (via Finish); Reader[T]
// values do not satisfy it. It lets a hand-written composite codec hold a
// heterogeneous list of child column codecs and finalize them in depth-first textual order
// without needing to know each child's element type (spec.md §4.5).
type Segment interface {
	Finish(w *bitbuf.Writer)
}
