package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
	"github.com/arlobytes/bitcode/errs"
)

func TestDiscColumn_FixedWidthRoundTrip(t *testing.T) {
	tags := []int{0, 1, 2, 3, 2, 1, 0}

	w := column.NewDiscWriter(4, nil)
	for _, tg := range tags {
		w.Push(tg)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewDiscReader(4, nil)
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(tags)))
	for i, want := range tags {
		assert.Equal(t, want, r.At(i))
	}
}

func TestDiscColumn_SingleVariantUsesZeroBits(t *testing.T) {
	w := column.NewDiscWriter(1, nil)
	w.Push(0)
	w.Push(0)
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	// 0 width bits per value: nothing at all is written to the stream.
	assert.Equal(t, 0, len(data))

	r := column.NewDiscReader(1, nil)
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, 2))
	assert.Equal(t, 0, r.At(0))
	assert.Equal(t, 0, r.At(1))
}

func TestDiscColumn_FrequencyHintRoundTrip(t *testing.T) {
	hint := []uint32{100, 1, 1, 50}
	tags := []int{0, 0, 3, 1, 0, 2, 3}

	w := column.NewDiscWriter(4, hint)
	for _, tg := range tags {
		w.Push(tg)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewDiscReader(4, hint)
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(tags)))
	for i, want := range tags {
		assert.Equal(t, want, r.At(i))
	}
}

func TestDiscColumn_RejectsOutOfRangeFixedWidthTag(t *testing.T) {
	bw := bitbuf.NewWriter()
	bw.WriteBits(3, 2) // 2-bit field for 3 variants can encode 0..3, but 3 is out of range
	data := bw.Finish()

	r := column.NewDiscReader(3, nil)
	br := bitbuf.NewReader(data)
	assert.ErrorIs(t, r.Parse(br, 1), errs.ErrInvalid)
}
