// Package compress provides the compression codecs used by armor frames.
//
// Armoring applies a two-stage pipeline: the payload is compressed with one
// of the codecs here, then the framed result is base-N encoded into ASCII
// text. Compressing before encoding matters because base-N encoding expands
// data by 8/BitWidth; shrinking the payload first shrinks that expansion
// proportionally.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast compression and decompression, moderate ratio
//
// Zstd has two build-dependent backends: valyala/gozstd (cgo) when cgo is
// available, and klauspost/compress/zstd (pure Go) otherwise. Both produce
// standard Zstandard frames and interoperate freely.
//
// All codecs are stateless values, safe for concurrent use; internal pooled
// encoder state is managed per call.
package compress
