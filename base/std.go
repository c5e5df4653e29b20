package base

// Predefined encodings for the common base-N alphabets. All use '=' padding
// and are wire-compatible with their RFC 4648 counterparts where one exists.
var (
	// Base2 is the binary encoding, one bit per symbol.
	Base2 = MustNew("01")

	// Base8 is the octal encoding.
	Base8 = MustNew("01234567")

	// Base16 is the uppercase hexadecimal encoding (RFC 4648 §8).
	Base16 = MustNew("0123456789ABCDEF")

	// Base16Lower is the lowercase hexadecimal encoding, matching the
	// output of encoding/hex.
	Base16Lower = MustNew("0123456789abcdef")

	// Base32 is the standard base32 encoding (RFC 4648 §6).
	Base32 = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")

	// Base32Hex is the extended-hex base32 encoding (RFC 4648 §7), which
	// preserves the sort order of the encoded data.
	Base32Hex = MustNew("0123456789ABCDEFGHIJKLMNOPQRSTUV")

	// Base64 is the standard base64 encoding (RFC 4648 §4).
	Base64 = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

	// Base64URL is the URL- and filename-safe base64 encoding (RFC 4648 §5).
	Base64URL = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")
)
