package basen

import (
	"encoding/base64"
	"testing"

	"github.com/arloliu/basen/base"
	"github.com/stretchr/testify/require"
)

func TestEncodeToString(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		{"empty", nil, ""},
		{"one byte", []byte{0xFF}, "/w=="},
		{"hello", []byte("hello"), "aGVsbG8="},
		{"block aligned", []byte("foo"), "Zm9v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodeToString(base.Base64, tt.src))
		})
	}
}

func TestEncodeToStringNoPad(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		{"empty", nil, ""},
		{"one byte", []byte{0xFF}, "/w"},
		{"hello", []byte("hello"), "aGVsbG8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodeToStringNoPad(base.Base64, tt.src))
		})
	}
}

func TestEncode_DelegatesToKernel(t *testing.T) {
	src := []byte("delegate")

	dst := make([]byte, EncodedLen(base.Base32, len(src)))
	Encode(base.Base32, dst, src)
	require.Equal(t, EncodeToString(base.Base32, src), string(dst))

	dst = make([]byte, EncodedLenNoPad(base.Base32, len(src)))
	EncodeNoPad(base.Base32, dst, src)
	require.Equal(t, EncodeToStringNoPad(base.Base32, src), string(dst))
}

func TestAppendEncode(t *testing.T) {
	src := []byte("hello")

	got := AppendEncode(base.Base64, []byte("prefix:"), src)
	require.Equal(t, "prefix:"+base64.StdEncoding.EncodeToString(src), string(got))

	got = AppendEncode(base.Base64, nil, src)
	require.Equal(t, base64.StdEncoding.EncodeToString(src), string(got))
}

func TestAppendEncodeNoPad(t *testing.T) {
	src := []byte("hello")

	got := AppendEncodeNoPad(base.Base64, []byte("prefix:"), src)
	require.Equal(t, "prefix:"+base64.RawStdEncoding.EncodeToString(src), string(got))

	// Appending an empty src leaves dst unchanged.
	got = AppendEncodeNoPad(base.Base64, []byte("prefix:"), nil)
	require.Equal(t, "prefix:", string(got))
}
