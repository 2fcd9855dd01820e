package ragfile

import (
	"bytes"
	"testing"

	"github.com/dleemiller/RagFile/errs"
	"github.com/dleemiller/RagFile/format"
	"github.com/dleemiller/RagFile/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmbedding(dim int, seed float32) []float32 {
	v := make([]float32, dim)
	for i := range v {
		sign := float32(1)
		if i%2 == 1 {
			sign = -1
		}
		v[i] = sign * (seed + float32(i)*0.01)
	}

	return v
}

// Round-trip: save then load reproduces the header byte-for-byte and every
// payload field, mirroring spec.md scenario 1.
func TestCreateSaveLoadRoundTrip(t *testing.T) {
	dim := format.BinaryEmbeddingDim
	embedding := sampleEmbedding(dim, 0.1)

	rf, err := Create(
		"Test text",
		[]uint32{1, 2, 3, 4, 5, 6, 7, 8},
		embedding,
		1, uint16(dim),
		[]byte("Test metadata"),
		"test_tokenizer", "test_embedding",
		1,
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rf.Save(&buf))

	loaded, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, rf.Header.Bytes(), loaded.Header.Bytes())
	assert.Equal(t, rf.Text, loaded.Text)
	assert.Equal(t, rf.Embeddings, loaded.Embeddings)
	assert.Equal(t, rf.ExtendedMetadata, loaded.ExtendedMetadata)

	assert.EqualValues(t, 1, loaded.Header.NumEmbeddings)
	assert.EqualValues(t, dim, loaded.Header.EmbeddingDim)
	assert.EqualValues(t, dim, loaded.Header.EmbeddingSize)
	assert.EqualValues(t, len("Test metadata"), loaded.Header.MetadataSize)

	jac, err := similarity.Jaccard(rf.Header.MinHash, loaded.Header.MinHash)
	require.NoError(t, err)
	assert.Equal(t, 1.0, jac)
}

func TestCreateDeterministic(t *testing.T) {
	dim := format.BinaryEmbeddingDim
	embedding := sampleEmbedding(dim, 0.1)
	tokens := []uint32{1, 2, 3, 4, 5, 6, 7, 8}

	r1, err := Create("same text", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)
	r2, err := Create("same text", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)

	assert.Equal(t, r1.Header.Bytes(), r2.Header.Bytes())
}

func TestCreateRejectsEmptyText(t *testing.T) {
	_, err := Create("", []uint32{1, 2, 3}, []float32{1, 2, 3}, 1, 3, nil, "tok", "emb", 0)
	require.ErrorIs(t, err, errs.ErrEmptyText)
}

func TestCreateRejectsEmptyTokens(t *testing.T) {
	_, err := Create("hi", nil, []float32{1, 2, 3}, 1, 3, nil, "tok", "emb", 0)
	require.ErrorIs(t, err, errs.ErrEmptyTokens)
}

func TestCreateRejectsEmbeddingSizeMismatch(t *testing.T) {
	_, err := Create("hi", []uint32{1, 2, 3}, []float32{1, 2, 3}, 2, 3, nil, "tok", "emb", 0)
	require.ErrorIs(t, err, errs.ErrEmbeddingSizeMismatch)
}

func TestCreateRejectsEmbeddingDimTooSmall(t *testing.T) {
	// embedding_dim (8) is smaller than format.BinaryEmbeddingDim (128):
	// the binary embedding cannot be derived.
	_, err := Create("hi", []uint32{1, 2, 3, 4, 5, 6, 7, 8}, sampleEmbedding(8, 0.1), 1, 8, nil, "tok", "emb", 0)
	require.Error(t, err)
}

func TestLoadRejectsShortHeader(t *testing.T) {
	_, err := Load(bytes.NewReader(make([]byte, 10)))
	require.Error(t, err)
}

func TestLoadRejectsTruncatedPayload(t *testing.T) {
	dim := format.BinaryEmbeddingDim
	rf, err := Create("hello world", []uint32{1, 2, 3, 4, 5, 6, 7, 8}, sampleEmbedding(dim, 0.2), 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rf.Save(&buf))

	truncated := buf.Bytes()[:buf.Len()-4]
	_, err = Load(bytes.NewReader(truncated))
	require.ErrorIs(t, err, errs.ErrShortRead)
}

func TestReadHeaderDoesNotConsumePayload(t *testing.T) {
	dim := format.BinaryEmbeddingDim
	rf, err := Create("hello world", []uint32{1, 2, 3, 4, 5, 6, 7, 8}, sampleEmbedding(dim, 0.3), 1, uint16(dim), []byte("meta"), "tok", "emb", 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rf.Save(&buf))

	r := bytes.NewReader(buf.Bytes())
	h, err := ReadHeader(r)
	require.NoError(t, err)
	assert.Equal(t, rf.Header.Bytes(), h.Bytes())

	// The payload should still be readable from where the header left off.
	rest := make([]byte, r.Len())
	_, err = r.Read(rest)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), rest[:len("hello world")])
}
