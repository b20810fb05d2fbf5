package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
)

func TestOptionalColumn_RoundTrip(t *testing.T) {
	a, b := int32(7), int32(-3)
	rows := []*int32{&a, nil, &b, nil, nil}

	w := column.NewOptionalWriter[int32](column.NewInt32Writer())
	for _, v := range rows {
		w.Push(v)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewOptionalReader[int32](column.NewInt32Reader())
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(rows)))

	for i, want := range rows {
		got := r.At(i)
		if want == nil {
			assert.Nil(t, got, "row %d", i)

			continue
		}
		require.NotNil(t, got, "row %d", i)
		assert.Equal(t, *want, *got, "row %d", i)
	}
}

func TestOptionalColumn_AllNonePayloadColumnIsEmpty(t *testing.T) {
	rows := []*int32{nil, nil, nil}

	w := column.NewOptionalWriter[int32](column.NewInt32Writer())
	for _, v := range rows {
		w.Push(v)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewOptionalReader[int32](column.NewInt32Reader())
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(rows)))
	for i := range rows {
		assert.Nil(t, r.At(i))
	}
}
