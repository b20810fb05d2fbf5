package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
	"github.com/arlobytes/bitcode/errs"
)

func TestSequenceColumn_RoundTrip(t *testing.T) {
	rows := [][]int32{
		{1, 2, 3},
		{},
		{42},
		{-1, -2},
	}

	w := column.NewSequenceWriter[int32](column.NewInt32Writer())
	for _, row := range rows {
		w.Push(row)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewSequenceReader[int32](column.NewInt32Reader(), 1)
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(rows)))
	for i, want := range rows {
		assert.Equal(t, want, r.At(i))
	}
}

func TestSequenceColumn_RejectsHugeLengthBeforeAllocating(t *testing.T) {
	bw := bitbuf.NewWriter()
	column.EncodeLength(bw, uint64(column.MaxLength)) // declares a huge length...
	// ...but the stream ends immediately after, far short of that many bits.
	data := bw.Finish()

	r := column.NewSequenceReader[bool](column.NewBoolReader(), 1)
	br := bitbuf.NewReader(data)
	err := r.Parse(br, 1)
	assert.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalid) || errs.Is(err, errs.ErrEof))
}
