package column

import "github.com/arlobytes/bitcode/bitbuf"

// RawByteWriter is the column codec spec.md §4.7 calls for inside a byte
// string: "a packed byte column at 8-bit width" — a fixed-width column with
// no header, unlike Uint8's bounded-range packing. Byte strings carry
// arbitrary binary data with no meaningful value range to exploit, so
// there is nothing for a range header to buy; writing the whole column
// through the byte-aligned fast path in one call is both simpler and
// faster than per-value range-packed writes.
type RawByteWriter struct {
	values []byte
}

var _ Writer[byte] = (*RawByteWriter)(nil)

// NewRawByteWriter creates an empty raw byte column writer.
func NewRawByteWriter() *RawByteWriter { return &RawByteWriter{} }

func (w *RawByteWriter) Reserve(n int) {
	if cap(w.values)-len(w.values) < n {
		next := make([]byte, len(w.values), len(w.values)+n)
		copy(next, w.values)
		w.values = next
	}
}

func (w *RawByteWriter) Push(v byte) { w.values = append(w.values, v) }
func (w *RawByteWriter) Len() int    { return len(w.values) }

func (w *RawByteWriter) Finish(bw *bitbuf.Writer) {
	bw.WriteBytesAligned(w.values)
}

// RawByteReader is the decode-side counterpart of RawByteWriter. Every byte
// value is valid, so there is nothing to reject beyond running out of
// input.
type RawByteReader struct {
	values []byte
}

var _ Reader[byte] = (*RawByteReader)(nil)

// NewRawByteReader creates an empty raw byte column reader.
func NewRawByteReader() *RawByteReader { return &RawByteReader{} }

func (r *RawByteReader) Parse(br *bitbuf.Reader, n int) error {
	values, err := br.ReadBytesAligned(n)
	if err != nil {
		return err
	}
	r.values = values

	return nil
}

func (r *RawByteReader) At(i int) byte { return r.values[i] }
func (r *RawByteReader) Len() int      { return len(r.values) }
