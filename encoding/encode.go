package encoding

import (
	"fmt"

	"github.com/arloliu/basen/base"
)

// EncodedLen returns the padded output length for n input bytes:
// ceil(n/BlockBytes) * BlockSymbols. The final block is always emitted in
// full, with padding filling the positions no input bits reach.
//
// Use the result to size the dst buffer for Encode.
func EncodedLen(b base.Base, n int) int {
	enc := b.BlockBytes()
	dec := b.BlockSymbols()

	return (n + enc - 1) / enc * dec
}

// EncodedLenNoPad returns the unpadded output length for n input bytes:
// ceil(8n/BitWidth). Only symbols that carry input bits are counted.
//
// Use the result to size the dst buffer for EncodeNoPad.
func EncodedLenNoPad(b base.Base, n int) int {
	bit := b.BitWidth()

	return (8*n + bit - 1) / bit
}

// Encode encodes src into dst with padding, without allocating.
//
// len(dst) must equal EncodedLen(b, len(src)). Any other length is a
// programming-contract violation and panics before anything is written;
// the kernel never silently truncates or overruns.
//
// dst is exactly partitioned into one output block per full input block,
// followed by the final block, which carries the remaining input bits and is
// filled to BlockSymbols with the padding byte. An empty src writes nothing.
func Encode(b base.Base, dst, src []byte) {
	bit := b.BitWidth()
	enc := b.BlockBytes()
	dec := b.BlockSymbols()

	if len(dst) != (len(src)+enc-1)/enc*dec {
		panic(fmt.Sprintf("encoding: Encode dst length %d, want %d for %d input bytes",
			len(dst), (len(src)+enc-1)/enc*dec, len(src)))
	}

	n := len(src) / enc
	for i := 0; i < n; i++ {
		encodeBlock(b, bit, enc, dec, dst[i*dec:(i+1)*dec], src[i*enc:(i+1)*enc])
	}
	encodeLast(b, bit, enc, dec, dst[n*dec:], src[n*enc:])
}

// EncodeNoPad encodes src into dst without padding, without allocating.
//
// len(dst) must equal EncodedLenNoPad(b, len(src)); any other length panics
// before anything is written. No padding byte is ever produced: the final
// block is emitted short, holding exactly the symbols that carry input bits.
func EncodeNoPad(b base.Base, dst, src []byte) {
	bit := b.BitWidth()
	enc := b.BlockBytes()
	dec := b.BlockSymbols()

	if len(dst) != (8*len(src)+bit-1)/bit {
		panic(fmt.Sprintf("encoding: EncodeNoPad dst length %d, want %d for %d input bytes",
			len(dst), (8*len(src)+bit-1)/bit, len(src)))
	}

	n := len(src) / enc
	for i := 0; i < n; i++ {
		encodeBlock(b, bit, enc, dec, dst[i*dec:(i+1)*dec], src[i*enc:(i+1)*enc])
	}
	// The remaining dst length is EncodedLenNoPad of the remaining input, so
	// the block encoder emits exactly the meaningful symbols.
	encodeBlock(b, bit, enc, dec, dst[n*dec:], src[n*enc:])
}

// encodeBlock packs src into a 64-bit accumulator, most-significant byte
// first, and emits one symbol per dst byte, most-significant bit group
// first.
//
// For a full block len(src) == enc and len(dst) == dec. For the final block
// both may be shorter: unset input bytes contribute zero bits, and only the
// first len(dst) symbols are produced. dec <= 8 bounds the accumulator to
// dec*bit <= 48 bits.
func encodeBlock(b base.Base, bit, enc, dec int, dst, src []byte) {
	var x uint64
	for j, c := range src {
		x |= uint64(c) << (8 * (enc - 1 - j))
	}

	mask := byte(1<<bit - 1)
	for k := range dst {
		dst[k] = b.Symbol(byte(x>>(bit*(dec-1-k))) & mask)
	}
}

// encodeLast encodes the final, possibly partial, input block with padding.
//
// The first ceil(8*len(src)/bit) dst bytes receive the symbols carrying
// input bits; the rest of dst is filled with the padding byte. This is the
// only place padding is written. With an empty src the whole block is
// padding; with an empty dst (src was block-aligned) nothing is written.
func encodeLast(b base.Base, bit, enc, dec int, dst, src []byte) {
	olen := (8*len(src) + bit - 1) / bit
	encodeBlock(b, bit, enc, dec, dst[:olen], src)

	pad := b.Padding()
	for k := olen; k < len(dst); k++ {
		dst[k] = pad
	}
}
