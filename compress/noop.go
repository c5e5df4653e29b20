package compress

// NoOpCodec bypasses data without compression.
//
// Useful when the payload is already compressed, or as a baseline when
// measuring codec overhead. Both directions return the input slice as-is,
// without copying, so callers must not modify the input while the result is
// in use.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-op codec that bypasses data.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input data unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
