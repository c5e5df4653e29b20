// Package armor renders arbitrary binary payloads as self-describing ASCII
// text frames.
//
// An armor frame is a fixed header followed by the (optionally compressed)
// payload, run through the base-N encoder:
//
//	offset  size  field
//	0       3     magic "BN1"
//	3       1     compression type (compress.Type)
//	4       8     xxHash64 of the raw payload, big-endian
//	12      -     payload, compressed per the compression type
//
// The checksum covers the payload before compression, so a future de-armorer
// can verify integrity end to end regardless of codec. Compressing before
// encoding shrinks the base-N expansion proportionally.
//
// Example:
//
//	text, err := armor.Encode(payload,
//	    armor.WithCompression(compress.Zstd),
//	    armor.WithBase(base.Base32),
//	)
package armor

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/basen"
	"github.com/arloliu/basen/base"
	"github.com/arloliu/basen/compress"
	"github.com/arloliu/basen/internal/hash"
	"github.com/arloliu/basen/internal/pool"
)

// Magic identifies version 1 armor frames.
const Magic = "BN1"

// HeaderSize is the fixed frame header size in bytes: magic, compression
// type, and payload checksum.
const HeaderSize = len(Magic) + 1 + 8

type options struct {
	b     base.Base
	codec compress.Type
	noPad bool
}

// Option configures an armor encode.
type Option func(*options)

// WithBase selects the base-N encoding for the frame text. Defaults to
// base.Base64.
func WithBase(b base.Base) Option {
	return func(o *options) {
		o.b = b
	}
}

// WithCompression selects the payload compression codec. Defaults to
// compress.None.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.codec = t
	}
}

// WithoutPadding emits unpadded frame text.
func WithoutPadding() Option {
	return func(o *options) {
		o.noPad = true
	}
}

// Encode armors a payload into ASCII text.
//
// The payload is compressed with the configured codec, framed with the magic,
// compression flag, and raw-payload checksum, and base-N encoded. An empty
// payload produces a valid frame containing only the header.
//
// Parameters:
//   - payload: Raw bytes to armor; not modified, lifetime is the caller's
//   - opts: Optional settings (WithBase, WithCompression, WithoutPadding)
//
// Returns:
//   - string: The armored ASCII text
//   - error: ErrUnknownCompression or the codec's compression error
func Encode(payload []byte, opts ...Option) (string, error) {
	o := options{
		b:     base.Base64,
		codec: compress.None,
	}
	for _, opt := range opts {
		opt(&o)
	}

	codec, err := compress.GetCodec(o.codec)
	if err != nil {
		return "", err
	}

	packed, err := codec.Compress(payload)
	if err != nil {
		return "", fmt.Errorf("compress armor payload: %w", err)
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.Grow(HeaderSize + len(packed))
	buf.MustWrite([]byte(Magic))
	buf.MustWriteByte(byte(o.codec))

	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], hash.Sum64(payload))
	buf.MustWrite(sum[:])
	buf.MustWrite(packed)

	if o.noPad {
		return basen.EncodeToStringNoPad(o.b, buf.Bytes()), nil
	}

	return basen.EncodeToString(o.b, buf.Bytes()), nil
}
