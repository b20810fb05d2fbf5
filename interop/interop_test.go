package interop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode/interop"
)

func codecs() map[string]interop.Codec {
	return map[string]interop.Codec{
		"noop": interop.NewNoOp(),
		"s2":   interop.NewS2(),
		"lz4":  interop.NewLZ4(),
		"zstd": interop.NewZstd(),
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := []byte{}
	for i := 0; i < 4096; i++ {
		data = append(data, byte(i%7))
	}

	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := c.Compress(data)
			require.NoError(t, err)

			decompressed, err := c.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCodecs_CompressHighlyRedundantData(t *testing.T) {
	data := make([]byte, 16*1024)

	for name, c := range codecs() {
		if name == "noop" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			compressed, err := c.Compress(data)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(data))
		})
	}
}
