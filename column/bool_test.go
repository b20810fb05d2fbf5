package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
)

func TestBoolColumn_RoundTrip(t *testing.T) {
	values := []bool{true, false, false, true, true, true, false}

	w := column.NewBoolWriter()
	w.Reserve(len(values))
	for _, v := range values {
		w.Push(v)
	}

	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	assert.Equal(t, len(values), w.Len())

	r := column.NewBoolReader()
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(values)))

	for i, want := range values {
		assert.Equal(t, want, r.At(i))
	}
}
