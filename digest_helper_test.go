package ragfile

import (
	"testing"

	"github.com/dleemiller/RagFile/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentDigestDeterministic(t *testing.T) {
	dim := format.BinaryEmbeddingDim
	embedding := sampleEmbedding(dim, 0.5)
	tokens := []uint32{1, 2, 3, 4, 5, 6, 7, 8}

	r1, err := Create("digest text", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)
	r2, err := Create("digest text", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)

	d1, err := r1.ContentDigest()
	require.NoError(t, err)
	d2, err := r2.ContentDigest()
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestContentDigestDiffersOnText(t *testing.T) {
	dim := format.BinaryEmbeddingDim
	embedding := sampleEmbedding(dim, 0.5)
	tokens := []uint32{1, 2, 3, 4, 5, 6, 7, 8}

	r1, err := Create("digest text a", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)
	r2, err := Create("digest text b", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)

	d1, err := r1.ContentDigest()
	require.NoError(t, err)
	d2, err := r2.ContentDigest()
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}
