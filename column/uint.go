package column

import (
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
	"github.com/arlobytes/bitcode/internal/bitwidth"
	"github.com/arlobytes/bitcode/internal/gamma"
)

// uintHeaderWidthBits is the fixed field width used to store a column's
// chosen packed width (0..64 fits comfortably in 7 bits).
const uintHeaderWidthBits = 7

// uintCore is the shared bounded-unsigned-integer column codec behind the
// Uint8/16/32/64 writer and reader wrappers (spec.md §4.3).
//
// Two physical representations are supported, selected by a single mode
// bit in the header:
//   - packed range mode (mode bit 0): each value is stored as v-lo in
//     w = ceil(log2(hi-lo+1)) bits, where lo and hi are the minimum and
//     maximum values actually pushed.
//   - gamma mode (mode bit 1, opt-in via WithGamma): each value is stored
//     as an independent gamma code, which favors columns dominated by
//     small values regardless of a few large outliers.
type uintCore struct {
	natural int // native width in bits: 8, 16, 32, or 64
	gamma   bool

	values []uint64

	// decode side
	mode bool
	lo   uint64
	width int
}

func newUintCore(natural int, gammaMode bool) uintCore {
	return uintCore{natural: natural, gamma: gammaMode}
}

func (c *uintCore) reserve(n int) {
	if cap(c.values)-len(c.values) < n {
		next := make([]uint64, len(c.values), len(c.values)+n)
		copy(next, c.values)
		c.values = next
	}
}

func (c *uintCore) push(v uint64) {
	c.values = append(c.values, v)
}

func (c *uintCore) length() int { return len(c.values) }

func (c *uintCore) natMax() uint64 {
	if c.natural >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(c.natural)) - 1
}

func (c *uintCore) finish(w *bitbuf.Writer) {
	if c.gamma {
		w.WriteBit(true)
		for _, v := range c.values {
			gamma.Encode(w, v)
		}

		return
	}

	w.WriteBit(false)

	var lo, hi uint64
	if len(c.values) > 0 {
		lo, hi = c.values[0], c.values[0]
		for _, v := range c.values[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	width := bitwidth.ForRange(hi - lo)

	w.WriteBits(uint64(width), uintHeaderWidthBits)
	w.WriteBits(lo, c.natural)

	for _, v := range c.values {
		w.WriteBits(v-lo, width)
	}
}

// uintCoreReader is the decode-side counterpart of uintCore.
type uintCoreReader struct {
	natural int

	mode  bool // true = gamma
	lo    uint64
	width int

	values []uint64
}

func newUintCoreReader(natural int) uintCoreReader {
	return uintCoreReader{natural: natural}
}

func (c *uintCoreReader) natMax() uint64 {
	if c.natural >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(c.natural)) - 1
}

func (c *uintCoreReader) parse(r *bitbuf.Reader, n int) error {
	modeBit, err := r.ReadBits(1)
	if err != nil {
		return err
	}
	c.mode = modeBit == 1

	if c.mode {
		// Every gamma code is at least one bit long.
		if n > r.RemainingBits() {
			return errs.ErrEof
		}

		values := make([]uint64, n)
		for i := range values {
			v, err := gamma.Decode(r, c.natMax())
			if err != nil {
				return err
			}
			values[i] = v
		}
		c.values = values

		return nil
	}

	widthBits, err := r.ReadBits(uintHeaderWidthBits)
	if err != nil {
		return err
	}
	width := int(widthBits)
	if width < 0 || width > c.natural {
		// A legitimately produced column never needs more bits per value
		// than the element type's natural width; a wider claim is corrupt.
		return errs.ErrInvalid
	}

	lo, err := r.ReadBits(c.natural)
	if err != nil {
		return err
	}

	var widthMask uint64
	if width > 0 {
		widthMask = (uint64(1) << uint(width)) - 1
	}
	if widthMask > c.natMax()-lo {
		// The widest value this header permits would overflow the
		// element type's natural range; no legitimate encoder emits this.
		return errs.ErrInvalid
	}

	footprint := n * width
	if footprint > r.RemainingBits() {
		return errs.ErrEof
	}

	values := make([]uint64, n)
	for i := range values {
		raw, err := r.ReadBits(width)
		if err != nil {
			return err
		}
		values[i] = lo + raw
	}

	c.lo = lo
	c.width = width
	c.values = values

	return nil
}

func (c *uintCoreReader) at(i int) uint64 { return c.values[i] }
func (c *uintCoreReader) length() int     { return len(c.values) }

// UintOption configures a bounded integer column writer. Readers take no
// options: the header's mode bit tells them which representation was used.
type UintOption func(*uintOptions)

type uintOptions struct {
	gamma bool
}

// WithGamma opts a column into per-value gamma coding instead of
// range-packed fixed width, which suits columns of mostly-small values with
// occasional large outliers (spec.md §4.2: "opt-in small integers").
func WithGamma() UintOption {
	return func(o *uintOptions) { o.gamma = true }
}

func applyUintOptions(opts []UintOption) uintOptions {
	var o uintOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// --- Uint8 -------------------------------------------------------------

// Uint8Writer is the column codec for uint8.
type Uint8Writer struct{ core uintCore }

var _ Writer[uint8] = (*Uint8Writer)(nil)

// NewUint8Writer creates a uint8 column writer.
func NewUint8Writer(opts ...UintOption) *Uint8Writer {
	o := applyUintOptions(opts)
	return &Uint8Writer{core: newUintCore(8, o.gamma)}
}

func (w *Uint8Writer) Reserve(n int)       { w.core.reserve(n) }
func (w *Uint8Writer) Push(v uint8)        { w.core.push(uint64(v)) }
func (w *Uint8Writer) Len() int            { return w.core.length() }
func (w *Uint8Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Uint8Reader is the decode-side counterpart of Uint8Writer.
type Uint8Reader struct{ core uintCoreReader }

var _ Reader[uint8] = (*Uint8Reader)(nil)

// NewUint8Reader creates a uint8 column reader.
func NewUint8Reader() *Uint8Reader {
	return &Uint8Reader{core: newUintCoreReader(8)}
}

func (r *Uint8Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Uint8Reader) At(i int) uint8                       { return uint8(r.core.at(i)) }
func (r *Uint8Reader) Len() int                             { return r.core.length() }

// --- Uint16 ------------------------------------------------------------

// Uint16Writer is the column codec for uint16.
type Uint16Writer struct{ core uintCore }

var _ Writer[uint16] = (*Uint16Writer)(nil)

// NewUint16Writer creates a uint16 column writer.
func NewUint16Writer(opts ...UintOption) *Uint16Writer {
	o := applyUintOptions(opts)
	return &Uint16Writer{core: newUintCore(16, o.gamma)}
}

func (w *Uint16Writer) Reserve(n int)       { w.core.reserve(n) }
func (w *Uint16Writer) Push(v uint16)       { w.core.push(uint64(v)) }
func (w *Uint16Writer) Len() int            { return w.core.length() }
func (w *Uint16Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Uint16Reader is the decode-side counterpart of Uint16Writer.
type Uint16Reader struct{ core uintCoreReader }

var _ Reader[uint16] = (*Uint16Reader)(nil)

// NewUint16Reader creates a uint16 column reader.
func NewUint16Reader() *Uint16Reader {
	return &Uint16Reader{core: newUintCoreReader(16)}
}

func (r *Uint16Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Uint16Reader) At(i int) uint16                      { return uint16(r.core.at(i)) }
func (r *Uint16Reader) Len() int                             { return r.core.length() }

// --- Uint32 ------------------------------------------------------------

// Uint32Writer is the column codec for uint32.
type Uint32Writer struct{ core uintCore }

var _ Writer[uint32] = (*Uint32Writer)(nil)

// NewUint32Writer creates a uint32 column writer.
func NewUint32Writer(opts ...UintOption) *Uint32Writer {
	o := applyUintOptions(opts)
	return &Uint32Writer{core: newUintCore(32, o.gamma)}
}

func (w *Uint32Writer) Reserve(n int)       { w.core.reserve(n) }
func (w *Uint32Writer) Push(v uint32)       { w.core.push(uint64(v)) }
func (w *Uint32Writer) Len() int            { return w.core.length() }
func (w *Uint32Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Uint32Reader is the decode-side counterpart of Uint32Writer.
type Uint32Reader struct{ core uintCoreReader }

var _ Reader[uint32] = (*Uint32Reader)(nil)

// NewUint32Reader creates a uint32 column reader.
func NewUint32Reader() *Uint32Reader {
	return &Uint32Reader{core: newUintCoreReader(32)}
}

func (r *Uint32Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Uint32Reader) At(i int) uint32                      { return uint32(r.core.at(i)) }
func (r *Uint32Reader) Len() int                             { return r.core.length() }

// --- Uint64 ------------------------------------------------------------

// Uint64Writer is the column codec for uint64.
type Uint64Writer struct{ core uintCore }

var _ Writer[uint64] = (*Uint64Writer)(nil)

// NewUint64Writer creates a uint64 column writer.
func NewUint64Writer(opts ...UintOption) *Uint64Writer {
	o := applyUintOptions(opts)
	return &Uint64Writer{core: newUintCore(64, o.gamma)}
}

func (w *Uint64Writer) Reserve(n int)       { w.core.reserve(n) }
func (w *Uint64Writer) Push(v uint64)       { w.core.push(v) }
func (w *Uint64Writer) Len() int            { return w.core.length() }
func (w *Uint64Writer) Finish(bw *bitbuf.Writer) { w.core.finish(bw) }

// Uint64Reader is the decode-side counterpart of Uint64Writer.
type Uint64Reader struct{ core uintCoreReader }

var _ Reader[uint64] = (*Uint64Reader)(nil)

// NewUint64Reader creates a uint64 column reader.
func NewUint64Reader() *Uint64Reader {
	return &Uint64Reader{core: newUintCoreReader(64)}
}

func (r *Uint64Reader) Parse(br *bitbuf.Reader, n int) error { return r.core.parse(br, n) }
func (r *Uint64Reader) At(i int) uint64                      { return r.core.at(i) }
func (r *Uint64Reader) Len() int                             { return r.core.length() }
