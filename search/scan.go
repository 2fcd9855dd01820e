package search

import (
	"errors"
	"iter"
	"os"

	ragfile "github.com/dleemiller/RagFile"
	"github.com/dleemiller/RagFile/errs"
	"github.com/dleemiller/RagFile/format"
	"github.com/dleemiller/RagFile/section"
	"github.com/dleemiller/RagFile/similarity"
)

// Match streams candidate file paths from paths, scores each one against
// query using method, and returns at most topK results in descending score
// order (spec.md §4.8). A candidate that fails to open, fails to parse, or
// is incompatible with the query (mismatched signature width) is a soft
// failure: it is skipped, not propagated. Only a non-positive topK is a
// hard, query-side error.
func Match(query section.Header, paths iter.Seq[string], topK int, method format.Method) ([]Result, error) {
	if topK <= 0 {
		return nil, errs.ErrInvalidTopK
	}

	h := newTopKHeap(topK)

	for path := range paths {
		score, ok := scoreCandidate(query, path, method)
		if !ok {
			continue
		}

		h.Push(Result{Path: path, Score: score})
	}

	results := h.Drain()
	reverse(results)

	return results, nil
}

// scoreCandidate opens path, reads its header only, and scores it against
// query. The second return value is false for any soft failure: open
// error, parse error, or an incompatible signature width.
func scoreCandidate(query section.Header, path string, method format.Method) (float64, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	candidate, err := ragfile.ReadHeader(f)
	if err != nil {
		return 0, false
	}

	switch method {
	case format.MethodJaccard:
		score, err := similarity.Jaccard(query.MinHash, candidate.MinHash)
		if err != nil {
			if errors.Is(err, errs.ErrWidthMismatch) {
				return 0, false
			}
			return 0, false
		}
		return score, true

	case format.MethodHamming:
		score, err := similarity.Hamming(query.BinaryEmbedding, candidate.BinaryEmbedding)
		if err != nil {
			return 0, false
		}
		return score, true

	default:
		return 0, false
	}
}

func reverse(r []Result) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
