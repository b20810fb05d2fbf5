package interop

// NoOp returns its input unchanged. It is the baseline every other codec's
// compressibility claim is measured against.
type NoOp struct{}

var _ Codec = NoOp{}

// NewNoOp creates a no-op codec.
func NewNoOp() NoOp { return NoOp{} }

func (NoOp) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOp) Decompress(data []byte) ([]byte, error) { return data, nil }
