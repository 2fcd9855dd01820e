// Package digest provides a fast, non-cryptographic content digest for a
// fully-serialized ragfile, intended for caller-side deduplication and
// catalog systems. It is deliberately outside the ragfile wire format:
// nothing in this package is stored in the header, and no index is built
// or maintained here (spec.md's "no global index or catalog" Non-goal).
package digest

import "github.com/cespare/xxhash/v2"

// ContentHash returns the 64-bit xxHash of a fully-serialized ragfile's
// bytes. Two ragfiles with the same ContentHash are almost certainly
// byte-identical; callers that need a guarantee should compare bytes
// directly, since this is a hash, not a cryptographic digest.
func ContentHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
