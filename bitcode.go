// Package bitcode implements a compact, columnar binary serialization
// format: given many rows of the same type, it transposes them from
// array-of-structs into struct-of-arrays before packing each column at the
// tightest fixed or variable width its own observed values allow.
//
// # Core usage
//
// Callers build one column.Writer[T] per field of their row type (see the
// column package for the primitive and composite codecs available), wire
// them into a composite via column.NewSequenceWriter /
// column.NewSumWriter / column.NewMapWriter / etc. as their row shape
// requires, and hand the result to Encode:
//
//	rows := []int32{3, -1, 4, 1, 5, 9, 2, 6}
//	data := bitcode.Encode(rows, func() column.Writer[int32] {
//	    return column.NewInt32Writer()
//	})
//
//	decoded, err := bitcode.Decode(data, func() column.Reader[int32] {
//	    return column.NewInt32Reader()
//	})
//
// Encode never fails: every Go value already satisfies its own column
// codec's constraints by construction. Decode validates its entire input
// before returning any value (the front-loaded validation invariant): a
// non-nil error means nothing in data was trusted, not that decoding
// stopped partway through.
//
// # Reusing scratch buffers
//
// A single top-level Encode call already draws its bit buffer from a
// package-wide pool (see internal/pool) and returns it after copying the
// final result out, so repeated one-shot calls already amortize well. For
// call sites that want to make that reuse explicit — e.g. a hot loop
// encoding many independent documents back to back — construct a *Buffer
// once with NewBuffer and call EncodeInto(buf, rows, newWriter) instead of
// the package-level Encode.
package bitcode

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
	"github.com/arlobytes/bitcode/internal/pool"
)

// Encode transposes rows into columns using the writer newWriter
// constructs, and returns the encoded bytes. It never returns an error:
// Go's type system already guarantees every value pushed is valid for its
// column codec.
func Encode[T any](rows []T, newWriter func() column.Writer[T]) []byte {
	buf := pool.Get()
	bw := bitbuf.NewWriterWithBuffer(buf)

	writeRows(bw, rows, newWriter)

	return bw.Finish()
}

// Decode parses data written by Encode (or by any encoder producing the
// same column layout) back into a slice of rows, using the reader
// newReader constructs for the element columns. Decode front-loads all
// validation: if it returns a non-nil error, no element of the returned
// slice (which is nil on error) should be trusted or used.
func Decode[T any](data []byte, newReader func() column.Reader[T]) ([]T, error) {
	br := bitbuf.NewReader(data)

	return readRows(br, newReader)
}

func writeRows[T any](bw *bitbuf.Writer, rows []T, newWriter func() column.Writer[T]) {
	w := newWriter()
	w.Reserve(len(rows))
	for _, v := range rows {
		w.Push(v)
	}

	column.EncodeLength(bw, uint64(len(rows)))
	w.Finish(bw)
}

func readRows[T any](br *bitbuf.Reader, newReader func() column.Reader[T]) ([]T, error) {
	n, err := column.DecodeLength(br, uint64(column.MaxLength))
	if err != nil {
		return nil, err
	}

	r := newReader()
	if err := r.Parse(br, int(n)); err != nil {
		return nil, err
	}

	if err := br.ExpectEnd(); err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i := range out {
		out[i] = r.At(i)
	}

	return out, nil
}

// Buffer is a reusable encode session. Each EncodeInto call writes into the
// pooled buffer b currently holds; finishing the bit writer hands that
// buffer back to the package-level pool, and EncodeInto then draws a fresh
// one from the pool for the next call. A Buffer is not safe for concurrent
// use.
type Buffer struct {
	buf *pool.ByteBuffer
}

// NewBuffer creates an empty reusable encode session.
func NewBuffer() *Buffer {
	return &Buffer{buf: pool.Get()}
}

// EncodeInto transposes rows into columns using b's pooled scratch buffer
// and returns the encoded bytes. b may be reused for further EncodeInto
// calls afterward. Methods cannot carry their own type parameters in Go, so
// this is a package-level function taking *Buffer rather than a method.
func EncodeInto[T any](b *Buffer, rows []T, newWriter func() column.Writer[T]) []byte {
	b.buf.Reset()
	bw := bitbuf.NewWriterWithBuffer(b.buf)

	writeRows(bw, rows, newWriter)
	out := bw.Finish()

	b.buf = pool.Get()

	return out
}

// Release returns b's scratch buffer to the shared pool. b must not be used
// afterward.
func (b *Buffer) Release() {
	pool.Put(b.buf)
	b.buf = nil
}
