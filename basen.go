// Package basen provides generic bit-level encoding for arbitrary base-N
// text encodings, parameterized entirely by a base.Base configuration
// describing symbol width, block geometry, alphabet, and padding.
//
// # Core Features
//
//   - One kernel for every power-of-two base from base2 to base64
//   - Padded and unpadded variants, wire-compatible with RFC 4648
//   - Allocation-free encoding into caller-supplied buffers
//   - Exact output sizing via pure length calculators
//   - xxHash64-keyed registry for encodings built from runtime alphabets
//   - ASCII armor with optional Zstd, S2, or LZ4 payload compression
//
// # Basic Usage
//
// Encoding with a predefined alphabet:
//
//	import (
//	    "github.com/arloliu/basen"
//	    "github.com/arloliu/basen/base"
//	)
//
//	text := basen.EncodeToString(base.Base32, []byte("hello"))   // "NBSWY3DP"
//	raw := basen.EncodeToStringNoPad(base.Base64, []byte{0xFF}) // "/w"
//
// Allocation-free encoding into a pre-sized buffer:
//
//	dst := make([]byte, basen.EncodedLen(base.Base64, len(data)))
//	basen.Encode(base.Base64, dst, data)
//
// The destination length is a hard contract: Encode and EncodeNoPad panic on
// any mismatch instead of truncating or overrunning.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding
// kernel. For advanced usage, use the subpackages directly: base for
// configurations and custom alphabets, encoding for the allocation-free
// kernel, armor for ASCII-armored compressed frames.
package basen

import (
	"slices"

	"github.com/arloliu/basen/base"
	"github.com/arloliu/basen/encoding"
)

// EncodedLen returns the padded output length for n input bytes.
func EncodedLen(b base.Base, n int) int {
	return encoding.EncodedLen(b, n)
}

// EncodedLenNoPad returns the unpadded output length for n input bytes.
func EncodedLenNoPad(b base.Base, n int) int {
	return encoding.EncodedLenNoPad(b, n)
}

// Encode encodes src into dst with padding, without allocating.
//
// len(dst) must equal EncodedLen(b, len(src)); any other length panics.
func Encode(b base.Base, dst, src []byte) {
	encoding.Encode(b, dst, src)
}

// EncodeNoPad encodes src into dst without padding, without allocating.
//
// len(dst) must equal EncodedLenNoPad(b, len(src)); any other length panics.
func EncodeNoPad(b base.Base, dst, src []byte) {
	encoding.EncodeNoPad(b, dst, src)
}

// EncodeToString returns the padded base-N encoding of src.
//
// The result contains only ASCII bytes: the base.Base construction contract
// guarantees every symbol and the padding byte are ASCII, so the byte buffer
// converts to a string without re-scanning. An empty src yields "".
func EncodeToString(b base.Base, src []byte) string {
	dst := make([]byte, encoding.EncodedLen(b, len(src)))
	encoding.Encode(b, dst, src)

	return string(dst)
}

// EncodeToStringNoPad returns the unpadded base-N encoding of src.
//
// An empty src yields "".
func EncodeToStringNoPad(b base.Base, src []byte) string {
	dst := make([]byte, encoding.EncodedLenNoPad(b, len(src)))
	encoding.EncodeNoPad(b, dst, src)

	return string(dst)
}

// AppendEncode appends the padded base-N encoding of src to dst and returns
// the extended slice.
func AppendEncode(b base.Base, dst, src []byte) []byte {
	n := encoding.EncodedLen(b, len(src))
	dst = slices.Grow(dst, n)
	encoding.Encode(b, dst[len(dst):len(dst)+n], src)

	return dst[:len(dst)+n]
}

// AppendEncodeNoPad appends the unpadded base-N encoding of src to dst and
// returns the extended slice.
func AppendEncodeNoPad(b base.Base, dst, src []byte) []byte {
	n := encoding.EncodedLenNoPad(b, len(src))
	dst = slices.Grow(dst, n)
	encoding.EncodeNoPad(b, dst[len(dst):len(dst)+n], src)

	return dst[:len(dst)+n]
}
