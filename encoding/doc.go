// Package encoding implements the bit-level base-N encoding kernel.
//
// The kernel converts byte sequences into their base-N textual form for any
// base.Base configuration, in two composable stages:
//
//   - Length calculators (EncodedLen, EncodedLenNoPad) compute the exact
//     output symbol count for a given input length, with or without padding.
//   - Block encoders pack one block of input bytes into a 64-bit accumulator,
//     most-significant byte first, then re-slice it into symbol-width bit
//     groups, most-significant group first. This bit order is what makes the
//     output wire-compatible with the standard base encodings.
//
// Encode and EncodeNoPad iterate the block encoders over a caller-supplied
// destination buffer without allocating. The destination must be sized
// exactly by the matching length calculator; a mismatched length is a caller
// bug and panics rather than truncating or overrunning.
//
// # Usage Guidance
//
// Most users should use the root basen package, which wraps this kernel with
// allocating string and append variants. Use this package directly when the
// destination buffer is managed by the caller, e.g. when encoding into a
// pooled or memory-mapped region.
package encoding
