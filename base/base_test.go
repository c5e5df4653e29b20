package base

import (
	"testing"

	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

func TestNew_BlockGeometry(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		bit      int
		enc      int
		dec      int
	}{
		{"base2", "01", 1, 1, 8},
		{"base4", "0123", 2, 1, 4},
		{"base8", "01234567", 3, 3, 8},
		{"base16", "0123456789ABCDEF", 4, 1, 2},
		{"base32", "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", 5, 5, 8},
		{"base64", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", 6, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.alphabet)
			require.NoError(t, err)
			require.Equal(t, tt.bit, e.BitWidth())
			require.Equal(t, tt.enc, e.BlockBytes())
			require.Equal(t, tt.dec, e.BlockSymbols())

			// The defining block invariants.
			require.Equal(t, e.BlockSymbols()*e.BitWidth(), e.BlockBytes()*8)
			require.LessOrEqual(t, e.BlockSymbols(), 8)

			require.Equal(t, DefaultPadding, e.Padding())
			require.Equal(t, tt.alphabet, e.Alphabet())
		})
	}
}

func TestNew_SymbolMapping(t *testing.T) {
	e, err := New("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		require.Equal(t, e.Alphabet()[i], e.Symbol(byte(i)))
	}
	require.Equal(t, byte('A'), e.Symbol(0))
	require.Equal(t, byte('7'), e.Symbol(31))
}

func TestNew_InvalidAlphabets(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		opts     []Option
		wantErr  error
	}{
		{"empty", "", nil, errs.ErrAlphabetSize},
		{"single symbol", "0", nil, errs.ErrAlphabetSize},
		{"not power of two", "0123456789", nil, errs.ErrAlphabetSize},
		{"too long", "0123456789ABCDEF0123456789abcdef0123456789ABCDEF0123456789abcdef!", nil, errs.ErrAlphabetSize},
		{"non-ascii symbol", "0\x80", nil, errs.ErrNotASCII},
		{"duplicate symbol", "00", nil, errs.ErrDuplicateSymbol},
		{"padding in alphabet", "0=", nil, errs.ErrInvalidPadding},
		{"custom padding in alphabet", "01", []Option{WithPadding('1')}, errs.ErrInvalidPadding},
		{"non-ascii padding", "01", []Option{WithPadding(0xFF)}, errs.ErrInvalidPadding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.alphabet, tt.opts...)
			require.Nil(t, e)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_WithPadding(t *testing.T) {
	e, err := New("0123456789ABCDEFGHIJKLMNOPQRSTUV", WithPadding('~'))
	require.NoError(t, err)
	require.Equal(t, byte('~'), e.Padding())
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { MustNew("not a power of two") })
	require.NotPanics(t, func() { MustNew("01") })
}

func TestPredefinedEncodings(t *testing.T) {
	tests := []struct {
		name string
		e    *Encoding
		size int
		bit  int
	}{
		{"Base2", Base2, 2, 1},
		{"Base8", Base8, 8, 3},
		{"Base16", Base16, 16, 4},
		{"Base16Lower", Base16Lower, 16, 4},
		{"Base32", Base32, 32, 5},
		{"Base32Hex", Base32Hex, 32, 5},
		{"Base64", Base64, 64, 6},
		{"Base64URL", Base64URL, 64, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.e.Alphabet(), tt.size)
			require.Equal(t, tt.bit, tt.e.BitWidth())
			require.Equal(t, DefaultPadding, tt.e.Padding())

			// Every symbol is ASCII, per the Base contract.
			for i := 0; i < tt.size; i++ {
				require.Less(t, tt.e.Symbol(byte(i)), byte(0x80))
			}
		})
	}
}
