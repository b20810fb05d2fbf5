package gamma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
	"github.com/arlobytes/bitcode/internal/gamma"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 7, 8, 255, 256, 1_000_000, 1<<32 - 1}

	w := bitbuf.NewWriter()
	for _, v := range values {
		gamma.Encode(w, v)
	}
	data := w.Finish()

	r := bitbuf.NewReader(data)
	for _, want := range values {
		got, err := gamma.Decode(r, ^uint64(0))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEncode_SmallValuesAreShort(t *testing.T) {
	w := bitbuf.NewWriter()
	gamma.Encode(w, 0)
	assert.Equal(t, 1, w.BitLen())
}

func TestDecode_RejectsAboveMaxValue(t *testing.T) {
	w := bitbuf.NewWriter()
	gamma.Encode(w, 10)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	_, err := gamma.Decode(r, 5)
	assert.ErrorIs(t, err, errs.ErrInvalid)
}

func TestDecode_RejectsRunawayLeadingZeros(t *testing.T) {
	w := bitbuf.NewWriter()
	// 64 zero bits with no terminating 1 bit is never a legitimate prefix.
	w.WriteBits(0, 64)
	w.WriteBits(0, 8)
	data := w.Finish()

	r := bitbuf.NewReader(data)
	_, err := gamma.Decode(r, ^uint64(0))
	assert.ErrorIs(t, err, errs.ErrInvalid)
}
