package interop

import "github.com/klauspost/compress/s2"

// S2 wraps klauspost/compress/s2, a Snappy-derived codec favoring
// throughput over ratio.
type S2 struct{}

var _ Codec = S2{}

// NewS2 creates an S2 codec.
func NewS2() S2 { return S2{} }

func (S2) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
