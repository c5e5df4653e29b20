package compress

// ZstdCodec provides Zstandard compression for armor payloads.
//
// Zstd offers the best compression ratio of the supported codecs and is the
// right choice when armored text size matters more than encoding speed, e.g.
// payloads embedded in configuration files or transmitted over constrained
// links.
//
// The implementation is selected at build time: with cgo available the
// valyala/gozstd bindings are used, otherwise the pure-Go
// klauspost/compress/zstd backend. Both emit standard Zstandard frames, so
// data compressed by one backend decompresses with the other.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
