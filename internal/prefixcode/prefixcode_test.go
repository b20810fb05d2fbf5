package prefixcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/internal/prefixcode"
)

func TestBuildEncodeDecode_RoundTrip(t *testing.T) {
	freqs := []uint32{100, 1, 1, 50, 10}
	table := prefixcode.Build(freqs)

	symbols := []int{0, 1, 2, 3, 4, 0, 3, 0}

	w := bitbuf.NewWriter()
	for _, s := range symbols {
		prefixcode.Encode(w, table, s)
	}
	data := w.Finish()

	r := bitbuf.NewReader(data)
	for _, want := range symbols {
		got, err := prefixcode.Decode(r, table)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBuild_MostFrequentGetsShortestCode(t *testing.T) {
	freqs := []uint32{1000, 1, 1, 1}
	table := prefixcode.Build(freqs)

	w := bitbuf.NewWriter()
	prefixcode.Encode(w, table, 0)
	mostFrequentLen := w.BitLen()

	w2 := bitbuf.NewWriter()
	prefixcode.Encode(w2, table, 1)
	rareLen := w2.BitLen()

	assert.Less(t, mostFrequentLen, rareLen)
}

func TestBuild_TwoSymbols(t *testing.T) {
	table := prefixcode.Build([]uint32{1, 1})

	w := bitbuf.NewWriter()
	prefixcode.Encode(w, table, 0)
	prefixcode.Encode(w, table, 1)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	a, err := prefixcode.Decode(r, table)
	require.NoError(t, err)
	b, err := prefixcode.Decode(r, table)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, []int{a, b})
}
