// Package similarity implements the three kernels ragfile scores
// candidates with: Jaccard over MinHash, Hamming over packed bits, and
// Cosine over full float embeddings (spec.md §4.4).
package similarity

import "github.com/dleemiller/RagFile/errs"

// Jaccard estimates Jaccard similarity between two equal-width MinHash
// signatures as the fraction of coordinates where they agree. It fails
// with ErrWidthMismatch if the signatures have different widths — callers
// (notably the scan engine) must check compatibility before invoking this
// and treat a mismatch as "skip", not "zero".
func Jaccard(a, b []uint32) (float64, error) {
	if len(a) != len(b) {
		return 0, errs.ErrWidthMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(len(a)), nil
}
