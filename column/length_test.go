package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
	"github.com/arlobytes/bitcode/errs"
)

func TestLengthColumn_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 1000, column.MaxLength}

	w := column.NewLengthWriter()
	for _, v := range values {
		w.Push(v)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewLengthReader()
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(values)))
	for i, want := range values {
		assert.Equal(t, want, r.At(i))
	}
}

func TestLengthColumn_RejectsAboveMaxLength(t *testing.T) {
	bw := bitbuf.NewWriter()
	column.EncodeLength(bw, column.MaxLength+1)
	data := bw.Finish()

	r := column.NewLengthReader()
	br := bitbuf.NewReader(data)
	assert.ErrorIs(t, r.Parse(br, 1), errs.ErrInvalid)
}
