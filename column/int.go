package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/internal/bitwidth"
)

// Signed integer columns reuse the unsigned bounded-range codec verbatim
// after zigzag-folding each value (spec.md §4.3: "For signed integers,
// zigzag is applied before range reduction"), so small-magnitude negative
// values pack just as tightly as small-magnitude positive ones.

// --- Int8 ----------------------------------------------------------------

// Int8Writer is the column codec for int8.
type Int8Writer struct{ core uintCore }

var _ Writer[int8] = (*Int8Writer)(nil)

// NewInt8Writer creates an int8 column writer.
func NewInt8Writer(opts ...UintOption) *Int8Writer {
	o := applyUintOptions(opts)
	return &Int8Writer{core: newUintCore(8, o.gamma)}
}

func (w *Int8Writer) Reserve(n int) { w.core.reserve(n) }
func (w *Int8Writer) Push(v int8)   { w.core.push(bitwidth.Zigzag(int64(v))) }
func (w *Int8Writer) Len() int      { return w.core.length() }
func (w *Int8Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Int8Reader is the decode-side counterpart of Int8Writer.
type Int8Reader struct{ core uintCoreReader }

var _ Reader[int8] = (*Int8Reader)(nil)

// NewInt8Reader creates an int8 column reader.
func NewInt8Reader() *Int8Reader {
	return &Int8Reader{core: newUintCoreReader(8)}
}

func (r *Int8Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Int8Reader) At(i int) int8 { return int8(bitwidth.Unzigzag(r.core.at(i))) }
func (r *Int8Reader) Len() int      { return r.core.length() }

// --- Int16 -----------------------------------------------------------------

// Int16Writer is the column codec for int16.
type Int16Writer struct{ core uintCore }

var _ Writer[int16] = (*Int16Writer)(nil)

// NewInt16Writer creates an int16 column writer.
func NewInt16Writer(opts ...UintOption) *Int16Writer {
	o := applyUintOptions(opts)
	return &Int16Writer{core: newUintCore(16, o.gamma)}
}

func (w *Int16Writer) Reserve(n int) { w.core.reserve(n) }
func (w *Int16Writer) Push(v int16)  { w.core.push(bitwidth.Zigzag(int64(v))) }
func (w *Int16Writer) Len() int      { return w.core.length() }
func (w *Int16Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Int16Reader is the decode-side counterpart of Int16Writer.
type Int16Reader struct{ core uintCoreReader }

var _ Reader[int16] = (*Int16Reader)(nil)

// NewInt16Reader creates an int16 column reader.
func NewInt16Reader() *Int16Reader {
	return &Int16Reader{core: newUintCoreReader(16)}
}

func (r *Int16Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Int16Reader) At(i int) int16 { return int16(bitwidth.Unzigzag(r.core.at(i))) }
func (r *Int16Reader) Len() int       { return r.core.length() }

// --- Int32 -----------------------------------------------------------------

// Int32Writer is the column codec for int32.
type Int32Writer struct{ core uintCore }

var _ Writer[int32] = (*Int32Writer)(nil)

// NewInt32Writer creates an int32 column writer.
func NewInt32Writer(opts ...UintOption) *Int32Writer {
	o := applyUintOptions(opts)
	return &Int32Writer{core: newUintCore(32, o.gamma)}
}

func (w *Int32Writer) Reserve(n int) { w.core.reserve(n) }
func (w *Int32Writer) Push(v int32)  { w.core.push(bitwidth.Zigzag(int64(v))) }
func (w *Int32Writer) Len() int      { return w.core.length() }
func (w *Int32Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Int32Reader is the decode-side counterpart of Int32Writer.
type Int32Reader struct{ core uintCoreReader }

var _ Reader[int32] = (*Int32Reader)(nil)

// NewInt32Reader creates an int32 column reader.
func NewInt32Reader() *Int32Reader {
	return &Int32Reader{core: newUintCoreReader(32)}
}

func (r *Int32Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Int32Reader) At(i int) int32 { return int32(bitwidth.Unzigzag(r.core.at(i))) }
func (r *Int32Reader) Len() int       { return r.core.length() }

// --- Int64 -----------------------------------------------------------------

// Int64Writer is the column codec for int64.
type Int64Writer struct{ core uintCore }

var _ Writer[int64] = (*Int64Writer)(nil)

// NewInt64Writer creates an int64 column writer.
func NewInt64Writer(opts ...UintOption) *Int64Writer {
	o := applyUintOptions(opts)
	return &Int64Writer{core: newUintCore(64, o.gamma)}
}

func (w *Int64Writer) Reserve(n int) { w.core.reserve(n) }
func (w *Int64Writer) Push(v int64)  { w.core.push(bitwidth.Zigzag(v)) }
func (w *Int64Writer) Len() int      { return w.core.length() }
func (w *Int64Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Int64Reader is the decode-side counterpart of Int64Writer.
type Int64Reader struct{ core uintCoreReader }

var _ Reader[int64] = (*Int64Reader)(nil)

// NewInt64Reader creates an int64 column reader.
func NewInt64Reader() *Int64Reader {
	return &Int64Reader{core: newUintCoreReader(64)}
}

func (r *Int64Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Int64Reader) At(i int) int64 { return bitwidth.Unzigzag(r.core.at(i)) }
func (r *Int64Reader) Len() int       { return r.core.length() }
