package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
)

func TestByteStringColumn_RoundTrip(t *testing.T) {
	rows := [][]byte{
		[]byte("hello"),
		{},
		{0x00, 0xFF, 0x7F},
	}

	w := column.NewByteStringWriter()
	for _, row := range rows {
		w.Push(row)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewByteStringReader()
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(rows)))
	for i, want := range rows {
		assert.Equal(t, want, r.At(i))
	}
}

func TestTextStringColumn_RoundTrip(t *testing.T) {
	rows := []string{"hello, world", "", "日本語", "emoji 🎉"}

	w := column.NewTextStringWriter()
	for _, row := range rows {
		w.Push(row)
	}
	bw := bitbuf.NewWriter()
	w.Finish(bw)
	data := bw.Finish()

	r := column.NewTextStringReader()
	br := bitbuf.NewReader(data)
	require.NoError(t, r.Parse(br, len(rows)))
	for i, want := range rows {
		assert.Equal(t, want, r.At(i))
	}
}
