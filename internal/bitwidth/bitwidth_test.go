package bitwidth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlobytes/bitcode/internal/bitwidth"
)

func TestForRange(t *testing.T) {
	cases := []struct {
		span uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{255, 8},
		{256, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bitwidth.ForRange(c.span), "span=%d", c.span)
	}
}

func TestForCount(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{256, 8},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bitwidth.ForCount(c.n), "n=%d", c.n)
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	values := []int64{0, -1, 1, -2, 2, 1<<62 - 1, -(1 << 62)}
	for _, v := range values {
		assert.Equal(t, v, bitwidth.Unzigzag(bitwidth.Zigzag(v)), "v=%d", v)
	}
}

func TestZigzag_SmallMagnitudeMapsToSmallUnsigned(t *testing.T) {
	assert.Equal(t, uint64(0), bitwidth.Zigzag(0))
	assert.Equal(t, uint64(1), bitwidth.Zigzag(-1))
	assert.Equal(t, uint64(2), bitwidth.Zigzag(1))
	assert.Equal(t, uint64(3), bitwidth.Zigzag(-2))
	assert.Equal(t, uint64(4), bitwidth.Zigzag(2))
}
