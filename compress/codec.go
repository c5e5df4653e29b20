package compress

import (
	"fmt"

	"github.com/arloliu/basen/errs"
)

// Type identifies a compression algorithm. The numeric values are written
// into armor frame headers and must not change.
type Type uint8

const (
	None Type = 0x1 // None represents no compression.
	Zstd Type = 0x2 // Zstd represents Zstandard compression.
	S2   Type = 0x3 // S2 represents S2 compression.
	LZ4  Type = 0x4 // LZ4 represents LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete payload in one call.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller (except
	// for the no-op codec, which passes the input through). The input slice
	// is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// result. Returns an error if the data is corrupted or was produced by
	// a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Stateless codec instance, safe for concurrent use
//   - error: ErrUnknownCompression for unrecognized types
func GetCodec(t Type) (Codec, error) {
	codec, ok := builtinCodecs[t]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownCompression, uint8(t))
	}

	return codec, nil
}
