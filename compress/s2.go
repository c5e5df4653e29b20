package compress

import "github.com/klauspost/compress/s2"

// S2Codec provides S2 compression, a Snappy-compatible format with better
// compression and throughput. A good default when armoring payloads on hot
// paths where Zstd's CPU cost is too high.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses the input data using S2 compression.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
