package base

import (
	"sync"
	"testing"

	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

func TestLookup_CachesEncodings(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	first, err := Lookup(alphabet)
	require.NoError(t, err)

	second, err := Lookup(alphabet)
	require.NoError(t, err)

	// Same (alphabet, padding) pair resolves to the same instance.
	require.Same(t, first, second)
}

func TestLookup_PaddingIsPartOfTheKey(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	def, err := Lookup(alphabet)
	require.NoError(t, err)

	tilde, err := Lookup(alphabet, WithPadding('~'))
	require.NoError(t, err)

	require.NotSame(t, def, tilde)
	require.Equal(t, DefaultPadding, def.Padding())
	require.Equal(t, byte('~'), tilde.Padding())
}

func TestLookup_InvalidAlphabet(t *testing.T) {
	e, err := Lookup("0123456789")
	require.Nil(t, e)
	require.ErrorIs(t, err, errs.ErrAlphabetSize)
}

func TestLookup_Concurrent(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	var wg sync.WaitGroup
	results := make([]*Encoding, 16)
	errors := make([]error, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errors[i] = Lookup(alphabet)
		}()
	}
	wg.Wait()

	for i, e := range results {
		require.NoError(t, errors[i])
		require.NotNil(t, e)
		require.Same(t, results[0], e)
	}
}
