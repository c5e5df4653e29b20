// Package base defines the Base configuration capability consumed by the
// encoding kernel, along with constructors for user-defined and standard
// alphabets.
//
// A Base describes a complete base-N text encoding: how many bits one output
// symbol carries, the block geometry that maps whole input bytes to whole
// output symbols, the symbol alphabet, and the padding byte. All invariants
// are validated once, at construction, by New; the encoding kernel trusts a
// constructed Base and never re-checks it per call.
//
// # Basic Usage
//
// Most users should use one of the predefined encodings:
//
//	import "github.com/arloliu/basen/base"
//
//	text := basen.EncodeToString(base.Base32, data)
//
// Custom alphabets go through New:
//
//	enc, err := base.New("0123456789abcdefghijklmnopqrstuv", base.WithPadding('~'))
//	if err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Encoding values are immutable after construction and safe for concurrent
// use by any number of goroutines.
package base

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/basen/errs"
)

// DefaultPadding is the padding byte used when WithPadding is not given.
const DefaultPadding byte = '='

// Base describes a base-N text encoding consumed by the encoding kernel.
//
// Implementations must uphold four invariants, checked once at construction
// rather than per encode call:
//   - BitWidth is in [1, 6]
//   - BlockBytes*8 == BlockSymbols*BitWidth
//   - BlockSymbols <= 8 (one block fits a 64-bit accumulator)
//   - Symbol is injective over [0, 2^BitWidth) and, like Padding, yields
//     only ASCII bytes
type Base interface {
	// BitWidth returns the number of meaningful bits carried by one output
	// symbol, in [1, 6].
	BitWidth() int

	// BlockBytes returns the number of input bytes in one full encoding
	// block.
	BlockBytes() int

	// BlockSymbols returns the number of output symbols in one full
	// encoding block.
	BlockSymbols() int

	// Symbol maps a value in [0, 2^BitWidth()) to its output byte.
	Symbol(v byte) byte

	// Padding returns the byte used to fill the final block in padded
	// encodes.
	Padding() byte
}

// Encoding is an immutable, validated Base built from an alphabet string.
//
// Construct instances with New, MustNew, or Lookup; the zero value is not a
// valid Base.
type Encoding struct {
	sym      [64]byte
	alphabet string
	pad      byte
	bit      int
	enc      int
	dec      int
}

var _ Base = (*Encoding)(nil)

// Option configures an Encoding under construction.
type Option func(*Encoding)

// WithPadding sets the padding byte, replacing DefaultPadding.
//
// The padding byte must be ASCII and must not appear in the alphabet; New
// reports ErrInvalidPadding otherwise.
func WithPadding(pad byte) Option {
	return func(e *Encoding) {
		e.pad = pad
	}
}

// New constructs an Encoding from an alphabet string.
//
// The alphabet's length determines the symbol bit width and the block
// geometry:
//
//	len(alphabet)  bits/symbol  bytes/block  symbols/block
//	2              1            1            8
//	4              2            1            4
//	8              3            3            8
//	16             4            1            2
//	32             5            5            8
//	64             6            3            4
//
// Validation happens here and only here: the alphabet length must be one of
// the sizes above, every symbol must be ASCII and distinct, and the padding
// byte must be ASCII and absent from the alphabet.
//
// Parameters:
//   - alphabet: Output symbols in value order; symbol i encodes value i
//   - opts: Optional settings (WithPadding)
//
// Returns:
//   - *Encoding: A validated, immutable encoding
//   - error: ErrAlphabetSize, ErrNotASCII, ErrDuplicateSymbol, or
//     ErrInvalidPadding
func New(alphabet string, opts ...Option) (*Encoding, error) {
	e := &Encoding{
		alphabet: alphabet,
		pad:      DefaultPadding,
	}
	for _, opt := range opts {
		opt(e)
	}

	n := len(alphabet)
	if n < 2 || n > 64 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: got %d symbols", errs.ErrAlphabetSize, n)
	}
	e.bit = bits.TrailingZeros(uint(n))

	// Smallest block where whole bytes map to whole symbols:
	// enc*8 == dec*bit == lcm(8, bit).
	g := gcd(8, e.bit)
	e.enc = e.bit / g
	e.dec = 8 / g

	var seen [128]bool
	for i := 0; i < n; i++ {
		c := alphabet[i]
		if c >= 0x80 {
			return nil, fmt.Errorf("%w: byte 0x%02x at index %d", errs.ErrNotASCII, c, i)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateSymbol, c)
		}
		seen[c] = true
		e.sym[i] = c
	}

	if e.pad >= 0x80 {
		return nil, fmt.Errorf("%w: byte 0x%02x is not ASCII", errs.ErrInvalidPadding, e.pad)
	}
	if seen[e.pad] {
		return nil, fmt.Errorf("%w: %q appears in the alphabet", errs.ErrInvalidPadding, e.pad)
	}

	return e, nil
}

// MustNew is like New but panics on error.
//
// Intended for package-level variables with known-good alphabets, such as
// the predefined encodings in this package.
func MustNew(alphabet string, opts ...Option) *Encoding {
	e, err := New(alphabet, opts...)
	if err != nil {
		panic(fmt.Sprintf("base: MustNew(%q): %v", alphabet, err))
	}

	return e
}

// BitWidth returns the number of meaningful bits per output symbol.
func (e *Encoding) BitWidth() int {
	return e.bit
}

// BlockBytes returns the number of input bytes per full encoding block.
func (e *Encoding) BlockBytes() int {
	return e.enc
}

// BlockSymbols returns the number of output symbols per full encoding block.
func (e *Encoding) BlockSymbols() int {
	return e.dec
}

// Symbol maps a value in [0, 2^BitWidth()) to its output byte.
func (e *Encoding) Symbol(v byte) byte {
	return e.sym[v]
}

// Padding returns the padding byte.
func (e *Encoding) Padding() byte {
	return e.pad
}

// Alphabet returns the alphabet string the encoding was built from.
func (e *Encoding) Alphabet() string {
	return e.alphabet
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
