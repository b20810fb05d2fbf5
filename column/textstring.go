package column

import (
	"unicode/utf8"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// TextStringWriter is the composite codec for a UTF-8 text field (spec.md
// §4.7: "Text string: encoded as a byte string of its canonical byte
// representation"). It is a ByteString column writer specialized to accept
// a string directly rather than requiring the caller to convert to []byte
// first; a Go string's canonical byte representation is simply its own
// backing bytes.
type TextStringWriter struct {
	bytes *ByteStringWriter
}

var _ Segment = (*TextStringWriter)(nil)

// NewTextStringWriter creates an empty text-string column writer.
func NewTextStringWriter() *TextStringWriter {
	return &TextStringWriter{bytes: NewByteStringWriter()}
}

func (w *TextStringWriter) Reserve(n int) { w.bytes.Reserve(n) }

// Push appends one row's string value, encoded as its raw UTF-8 bytes.
func (w *TextStringWriter) Push(s string) { w.bytes.Push([]byte(s)) }
func (w *TextStringWriter) Len() int      { return w.bytes.Len() }
func (w *TextStringWriter) Finish(bw *bitbuf.Writer) { w.bytes.Finish(bw) }

// TextStringReader is the decode-side counterpart of TextStringWriter. Each
// decoded byte string is validated for UTF-8 well-formedness before being
// surfaced (spec.md §4.7: "validated for well-formedness before being
// surfaced"), so a corrupt or hostile input can never produce an invalid
// string value.
type TextStringReader struct {
	bytes *ByteStringReader

	strs []string
}

// NewTextStringReader creates an empty text-string column reader.
func NewTextStringReader() *TextStringReader {
	return &TextStringReader{bytes: NewByteStringReader()}
}

func (r *TextStringReader) Parse(br *bitbuf.Reader, n int) error {
	if err := r.bytes.Parse(br, n); err != nil {
		return err
	}

	strs := make([]string, n)
	for i := range strs {
		b := r.bytes.At(i)
		if !utf8.Valid(b) {
			return errs.ErrInvalid
		}
		strs[i] = string(b)
	}
	r.strs = strs

	return nil
}

func (r *TextStringReader) At(i int) string { return r.strs[i] }
func (r *TextStringReader) Len() int        { return len(r.strs) }
