// Package hash computes xxHash64 fingerprints for alphabet registry keys
// and armor payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 fingerprint of an alphabet and its
// padding byte.
//
// The fingerprint is used as the cache key in the base package's encoding
// registry, so the same (alphabet, padding) pair always produces the same
// key across processes and platforms.
func Fingerprint(alphabet string, pad byte) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(alphabet)
	_, _ = d.Write([]byte{pad})

	return d.Sum64()
}

// Sum64 computes the xxHash64 checksum of the given data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
