package similarity

import (
	"math"

	"github.com/dleemiller/RagFile/errs"
	"github.com/dleemiller/RagFile/format"
)

// Cosine returns the cosine similarity between two equal-length float
// vectors, dot(a,b) / (||a|| * ||b||). Returns 0 when either vector's norm
// is zero, avoiding a NaN result for an all-zero embedding.
func Cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineAggregate scores two multi-vector files (m vectors of dimension d,
// n vectors of dimension d) by computing all m*n pairwise cosines and
// reducing them per mode: the maximum (ModeMax) or the arithmetic mean
// (ModeAvg). Fails if the two files' vectors have mismatched
// dimensionality, or if mode is not a recognized aggregation mode — an
// unknown mode is always an error, never a silent fallback to the default.
func CosineAggregate(a, b [][]float32, mode format.Mode) (float64, error) {
	if !mode.Valid() {
		return 0, errs.ErrUnknownCosineMode
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil
	}

	dim := len(a[0])
	for _, v := range a {
		if len(v) != dim {
			return 0, errs.ErrCosineDimMismatch
		}
	}
	for _, v := range b {
		if len(v) != dim {
			return 0, errs.ErrCosineDimMismatch
		}
	}

	var (
		max float64 = -1
		sum float64
	)
	count := 0
	for _, va := range a {
		for _, vb := range b {
			c := Cosine(va, vb)
			if c > max {
				max = c
			}
			sum += c
			count++
		}
	}

	switch mode {
	case format.ModeMax:
		return max, nil
	case format.ModeAvg:
		return sum / float64(count), nil
	default:
		// Unreachable: mode.Valid() already rejected anything else.
		return 0, errs.ErrUnknownCosineMode
	}
}
