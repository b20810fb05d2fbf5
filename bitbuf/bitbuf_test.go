package bitbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

func TestWriteReadBits_RoundTrip(t *testing.T) {
	w := bitbuf.NewWriter()
	w.WriteBits(0b101, 3)
	w.WriteBits(0, 0)
	w.WriteBits(0xFFFFFFFF, 32)
	w.WriteBit(true)
	w.WriteBits(0x1234567890ABCDEF, 64)
	data := w.Finish()

	r := bitbuf.NewReader(data)

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b101), v)

	v, err = r.ReadBits(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	v, err = r.ReadBits(32)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFFFFFF), v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	v, err = r.ReadBits(64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234567890ABCDEF), v)

	require.NoError(t, r.ExpectEnd())
}

func TestReadBits_Eof(t *testing.T) {
	w := bitbuf.NewWriter()
	w.WriteBits(0b11, 2)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	_, err := r.ReadBits(2)
	require.NoError(t, err)

	_, err = r.ReadBits(1)
	assert.ErrorIs(t, err, errs.ErrEof)
}

func TestExpectEnd_RejectsTrailingData(t *testing.T) {
	w := bitbuf.NewWriter()
	w.WriteBits(0, 16)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	_, err := r.ReadBits(1)
	require.NoError(t, err)

	assert.ErrorIs(t, r.ExpectEnd(), errs.ErrExpectedEof)
}

func TestByteAlignedFastPath(t *testing.T) {
	w := bitbuf.NewWriter()
	w.WriteBytesAligned([]byte{0x01, 0x02, 0x03})
	w.WriteAlignedUint(0xAABBCC, 4)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	b, err := r.ReadBytesAligned(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b)

	v, err := r.ReadAlignedUint(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xAABBCC), v)
}

func TestPeekBits_DoesNotAdvance(t *testing.T) {
	w := bitbuf.NewWriter()
	w.WriteBits(0b1010, 4)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	peeked, err := r.PeekBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1010), peeked)

	read, err := r.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, peeked, read)
}

func TestRecursionDepthCap(t *testing.T) {
	r := bitbuf.NewReader(nil)
	r.SetMaxDepth(2)

	require.NoError(t, r.EnterNested())
	require.NoError(t, r.EnterNested())
	assert.ErrorIs(t, r.EnterNested(), errs.ErrInvalid)

	r.ExitNested()
	require.NoError(t, r.EnterNested())
}

func TestLowestSignificantBitFirstOrder(t *testing.T) {
	// 0b1011 written as 4 bits LSB-first: bit0=1, bit1=1, bit2=0, bit3=1.
	w := bitbuf.NewWriter()
	w.WriteBit(true)
	w.WriteBit(true)
	w.WriteBit(false)
	w.WriteBit(true)
	data := w.Finish()

	require.Len(t, data, 1)
	assert.Equal(t, byte(0b1011), data[0])
}
