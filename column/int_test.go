package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
)

func TestInt32Column_RoundTrip(t *testing.T) {
	values := []int32{0, -1, 1, -100, 100, -2147483648, 2147483647}

	w := column.NewInt32Writer()
	for _, v := range values {
		w.Push(v)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewInt32Reader()
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(values)))
	for i, want := range values {
		assert.Equal(t, want, r.At(i))
	}
}

func TestInt8Column_SmallNegativeRangePacksTightly(t *testing.T) {
	values := []int8{-1, 0, 1, -1, 0}

	w := column.NewInt8Writer()
	for _, v := range values {
		w.Push(v)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	// zigzag maps {-1,0,1} to {1,0,2}: span 2 needs 2 bits per value.
	// header: 1 mode bit + 7 width bits + 8 lo bits = 16 bits, then 5*2=10
	// value bits, total 26 bits -> 4 bytes.
	assert.Equal(t, 4, len(data))

	r := column.NewInt8Reader()
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(values)))
	for i, want := range values {
		assert.Equal(t, want, r.At(i))
	}
}
