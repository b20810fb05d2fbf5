// Package pool provides a pooled, growable byte buffer used as the backing
// store for the bit writer and for the reusable encode Buffer.
//
// It is adapted from mebo's internal/pool package: the same amortized-growth
// strategy (fixed-size chunks below a threshold, 25% growth above it) keeps
// the number of reallocations low while repeated small writes fill a
// buffer. Each reallocation copies the bytes written so far into the new
// backing array.
package pool

import "sync"

// Default and threshold sizes for the scratch buffer pool. bitcode's typical
// payload (a handful of columns of a handful of fields) is much smaller than
// mebo's multi-metric blobs, so the default chunk is smaller too.
const (
	DefaultSize   = 1024 * 4  // 4KiB
	MaxThreshold  = 1024 * 64 // 64KiB
	growThreshold = 4 * DefaultSize
)

// ByteBuffer is a growable byte slice wrapper that tracks a logical length
// independent of the underlying capacity, so it can be grown once and reused
// across many short writes without repeated reallocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice up to the logical length.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its allocated capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the logical length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Slice returns buf[start:end]. Panics if the indices are out of bounds of
// the buffer's capacity.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the logical length of the buffer to n, which must be within
// the buffer's current capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend grows the logical length by n bytes if there is sufficient spare
// capacity, reporting whether it did so.
func (bb *ByteBuffer) Extend(n int) bool {
	cur := len(bb.B)
	if cap(bb.B)-cur < n {
		return false
	}
	bb.B = bb.B[:cur+n]

	return true
}

// ExtendOrGrow extends the logical length by n bytes, growing the backing
// array first if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation.
//
// Small buffers grow by a fixed chunk (DefaultSize) to avoid a storm of
// small reallocations during the first few writes; once a buffer has grown
// past growThreshold it grows by 25% of its current capacity instead, which
// bounds the total number of reallocations to O(log n) over the buffer's
// final size.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > growThreshold {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers to amortize allocation across repeated
// encode calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and are
// discarded (not retained) if they grow past maxThreshold, to avoid pinning
// large allocations in the pool after an outlier encode.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, resetting it first. A
// buffer that grew beyond maxThreshold is dropped instead of pooled.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultSize, MaxThreshold)

// Get retrieves a ByteBuffer from the default scratch pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the default scratch pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
