package search

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	ragfile "github.com/dleemiller/RagFile"
	"github.com/dleemiller/RagFile/format"
	"github.com/dleemiller/RagFile/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCandidate builds a ragfile from the given tokens (with a constant
// embedding) and saves it to dir/name.rag, returning the path.
func writeCandidate(t *testing.T, dir, name string, tokens []uint32) string {
	t.Helper()

	dim := format.BinaryEmbeddingDim
	embedding := make([]float32, dim)
	for i := range embedding {
		embedding[i] = 0.1
	}

	rf, err := ragfile.Create(name, tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)

	path := filepath.Join(dir, name+".rag")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, rf.Save(f))

	return path
}

func queryHeader(t *testing.T, tokens []uint32) section.Header {
	t.Helper()

	dim := format.BinaryEmbeddingDim
	embedding := make([]float32, dim)
	for i := range embedding {
		embedding[i] = 0.1
	}

	rf, err := ragfile.Create("query", tokens, embedding, 1, uint16(dim), nil, "tok", "emb", 0)
	require.NoError(t, err)

	return rf.Header
}

func TestMatchRejectsNonPositiveTopK(t *testing.T) {
	q := queryHeader(t, []uint32{1, 2, 3, 4, 5, 6, 7, 8})
	_, err := Match(q, slices.Values([]string{}), 0, format.MethodJaccard)
	require.Error(t, err)
}

func TestMatchSkipsUnopenableFiles(t *testing.T) {
	q := queryHeader(t, []uint32{1, 2, 3, 4, 5, 6, 7, 8})
	results, err := Match(q, slices.Values([]string{"/nonexistent/path/does-not-exist"}), 3, format.MethodJaccard)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchSelfIsTopMatch(t *testing.T) {
	dir := t.TempDir()
	tokens := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	q := queryHeader(t, tokens)

	self := writeCandidate(t, dir, "self", tokens)
	other := writeCandidate(t, dir, "other", []uint32{9, 10, 11, 12, 13, 14, 15, 16})

	results, err := Match(q, slices.Values([]string{other, self}), 2, format.MethodJaccard)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, self, results[0].Path)
	assert.Equal(t, 1.0, results[0].Score)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestMatchTruncatesToTopK(t *testing.T) {
	dir := t.TempDir()
	tokens := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	q := queryHeader(t, tokens)

	var paths []string
	for i := 0; i < 5; i++ {
		name := "c" + string(rune('a'+i))
		p := writeCandidate(t, dir, name, append(append([]uint32{}, tokens...), uint32(100+i)))
		paths = append(paths, p)
	}

	results, err := Match(q, slices.Values(paths), 3, format.MethodHamming)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}
