//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard level 3.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
