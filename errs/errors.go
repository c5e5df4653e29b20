// Package errs defines the sentinel errors returned by basen packages.
//
// All errors are defined as package-level variables so callers can test for
// specific failure conditions using errors.Is:
//
//	enc, err := base.New(alphabet)
//	if errors.Is(err, errs.ErrAlphabetSize) {
//	    // alphabet has an unsupported symbol count
//	}
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to attach
// context while preserving errors.Is matching.
package errs

import "errors"

var (
	// ErrAlphabetSize indicates an alphabet whose symbol count is not a
	// power of two between 2 and 64.
	ErrAlphabetSize = errors.New("alphabet length must be 2, 4, 8, 16, 32 or 64")

	// ErrNotASCII indicates an alphabet symbol outside the ASCII range.
	ErrNotASCII = errors.New("alphabet symbol is not ASCII")

	// ErrDuplicateSymbol indicates an alphabet containing the same symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")

	// ErrInvalidPadding indicates a padding byte that is not ASCII or that
	// collides with an alphabet symbol.
	ErrInvalidPadding = errors.New("invalid padding byte")

	// ErrUnknownCompression indicates an unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
)
