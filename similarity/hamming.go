package similarity

import (
	"math/bits"

	"github.com/dleemiller/RagFile/errs"
)

// Hamming computes 1 - hamming_distance/n_bits between two equal-length
// byte slices interpreted as bit vectors, where hamming_distance is the
// sum of popcount(a[i] XOR b[i]) over every byte. The result is in [0, 1].
// A length mismatch is ErrWidthMismatch, not a silently wrong answer.
func Hamming(a, b []byte) (float64, error) {
	if len(a) != len(b) {
		return 0, errs.ErrWidthMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	var distance int
	for i := range a {
		distance += bits.OnesCount8(a[i] ^ b[i])
	}

	nBits := len(a) * 8

	return 1 - float64(distance)/float64(nBits), nil
}
