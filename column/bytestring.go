package column

import "github.com/arlobytes/bitcode/bitbuf"

// ByteStringWriter is the composite codec for a raw byte-string field
// (spec.md §4.7: "Byte string: length(gamma) followed by a packed byte
// column at 8-bit width"). It is a sequence of RawByteWriter — a fixed
// 8-bit, no-header column, not the bounded-range Uint8 codec — specialized
// to accept and return []byte directly rather than requiring the caller to
// push one byte at a time.
type ByteStringWriter struct {
	seq *SequenceWriter[byte]
}

var _ Segment = (*ByteStringWriter)(nil)

// NewByteStringWriter creates an empty byte-string column writer.
func NewByteStringWriter() *ByteStringWriter {
	return &ByteStringWriter{seq: NewSequenceWriter[byte](NewRawByteWriter())}
}

func (w *ByteStringWriter) Reserve(n int)        { w.seq.Reserve(n) }
func (w *ByteStringWriter) Push(b []byte)        { w.seq.Push(b) }
func (w *ByteStringWriter) Len() int             { return w.seq.Len() }
func (w *ByteStringWriter) Finish(bw *bitbuf.Writer) { w.seq.Finish(bw) }

// ByteStringReader is the decode-side counterpart of ByteStringWriter.
type ByteStringReader struct {
	seq *SequenceReader[byte]
}

// NewByteStringReader creates an empty byte-string column reader.
func NewByteStringReader() *ByteStringReader {
	return &ByteStringReader{seq: NewSequenceReader[byte](NewRawByteReader(), 8)}
}

func (r *ByteStringReader) Parse(br *bitbuf.Reader, n int) error { return r.seq.Parse(br, n) }
func (r *ByteStringReader) At(i int) []byte                      { return r.seq.At(i) }
func (r *ByteStringReader) Len() int                             { return r.seq.Len() }
