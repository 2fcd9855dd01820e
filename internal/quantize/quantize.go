// Package quantize derives the ragfile header's binary embedding: the
// componentwise mean of a file's dense embedding vectors, sign-quantized
// into a packed bit vector (spec.md §4.3).
package quantize

import "github.com/dleemiller/RagFile/errs"

// Average computes the componentwise mean over the first dim dimensions of
// a (numEmbeddings, embeddingDim) flat, row-major embedding matrix.
//
// dim must be <= embeddingDim; only the first dim components of each row
// are read, matching the header's documented truncation behavior when
// embedding_dim exceeds BinaryEmbeddingDim.
func Average(flat []float32, numEmbeddings, embeddingDim, dim int) ([]float32, error) {
	if numEmbeddings <= 0 || embeddingDim <= 0 {
		return nil, errs.ErrEmptyEmbeddings
	}
	if dim > embeddingDim {
		return nil, errs.ErrEmbeddingDimTooSmall
	}

	avg := make([]float32, dim)
	for i := 0; i < numEmbeddings; i++ {
		row := flat[i*embeddingDim : i*embeddingDim+dim]
		for j, v := range row {
			avg[j] += v
		}
	}

	inv := float32(1) / float32(numEmbeddings)
	for j := range avg {
		avg[j] *= inv
	}

	return avg, nil
}

// Pack sign-quantizes avg into a packed bit vector: bit d is set iff
// avg[d] > 0 (strict), stored at byte d/8, bit d%8 counted from the LSB.
// len(avg) must be a multiple of 8.
func Pack(avg []float32) ([]byte, error) {
	if len(avg)%8 != 0 {
		return nil, errs.ErrInvalidBinaryDim
	}

	packed := make([]byte, len(avg)/8)
	for d, v := range avg {
		if v > 0 {
			packed[d/8] |= 1 << uint(d%8) //nolint:gosec
		}
	}

	return packed, nil
}
