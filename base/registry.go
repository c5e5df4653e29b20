package base

import (
	"sync"

	"github.com/arloliu/basen/internal/hash"
)

// registry caches constructed encodings keyed by the xxHash64 fingerprint of
// (alphabet, padding). Lookup is the read path; entries are never evicted.
var registry sync.Map // uint64 -> *Encoding

// Lookup returns a cached Encoding for the given alphabet and options,
// constructing and caching it on first use.
//
// Repeated lookups with the same alphabet and padding return the same
// *Encoding, so callers that build encodings from runtime configuration
// (e.g. per-request alphabet strings) pay the construction and validation
// cost once per process.
//
// The cache key is the xxHash64 fingerprint of the alphabet and padding
// byte. On a fingerprint hit the full alphabet is compared before the cached
// entry is returned; a colliding pair falls through to a fresh, uncached
// construction, so collisions cost performance, never correctness.
//
// Parameters:
//   - alphabet: Output symbols in value order, as for New
//   - opts: Optional settings (WithPadding)
//
// Returns:
//   - *Encoding: The cached or newly constructed encoding
//   - error: Same validation errors as New
func Lookup(alphabet string, opts ...Option) (*Encoding, error) {
	probe := Encoding{pad: DefaultPadding}
	for _, opt := range opts {
		opt(&probe)
	}

	key := hash.Fingerprint(alphabet, probe.pad)
	if v, ok := registry.Load(key); ok {
		cached, _ := v.(*Encoding)
		if cached.alphabet == alphabet && cached.pad == probe.pad {
			return cached, nil
		}
	}

	e, err := New(alphabet, opts...)
	if err != nil {
		return nil, err
	}

	// First writer wins, so concurrent first lookups converge on one
	// canonical instance. A colliding fingerprint keeps the existing entry
	// and this encoding is returned uncached.
	actual, _ := registry.LoadOrStore(key, e)
	cached, _ := actual.(*Encoding)
	if cached.alphabet == alphabet && cached.pad == probe.pad {
		return cached, nil
	}

	return e, nil
}
