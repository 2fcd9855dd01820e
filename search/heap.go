// Package search implements the bounded top-k min-heap and the sequential
// scan engine that streams candidate ragfile paths, scores them against a
// query header using header-only reads, and retains the k highest-scoring
// matches (spec.md §4.7, §4.8).
package search

import "container/heap"

// Result is one scored candidate: the path that produced it and its
// similarity score against the query header.
type Result struct {
	Path  string
	Score float64
}

// scoreHeap is a container/heap min-heap over Result, ordered by Score, with
// the minimum score at the root. It implements heap.Interface directly so
// the bounded-heap retention policy in topKHeap can call heap.Fix/heap.Pop.
type scoreHeap []Result

func (h scoreHeap) Len() int            { return len(h) }
func (h scoreHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h scoreHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoreHeap) Push(x interface{}) { *h = append(*h, x.(Result)) }
func (h *scoreHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topKHeap is a fixed-capacity min-heap that retains the capacity
// highest-scoring entries seen across a sequence of Push calls (spec.md
// §4.7). Once full, a newcomer only displaces the current minimum when it
// scores strictly greater — the documented tie-break that makes retention
// deterministic for a given input order.
type topKHeap struct {
	capacity int
	data     scoreHeap
}

// newTopKHeap allocates a bounded heap of the given capacity. capacity must
// be positive; callers validate top_k before constructing one.
func newTopKHeap(capacity int) *topKHeap {
	return &topKHeap{
		capacity: capacity,
		data:     make(scoreHeap, 0, capacity),
	}
}

// Push applies the retention policy: append and sift up while under
// capacity; otherwise replace the root and sift down only if entry scores
// strictly higher than the current minimum; otherwise discard entry.
func (h *topKHeap) Push(entry Result) {
	if h.data.Len() < h.capacity {
		heap.Push(&h.data, entry)
		return
	}

	if entry.Score > h.data[0].Score {
		h.data[0] = entry
		heap.Fix(&h.data, 0)
	}
}

// Len reports the number of entries currently retained.
func (h *topKHeap) Len() int { return h.data.Len() }

// Drain empties the heap and returns its contents in ascending score order.
// Callers wanting descending order (the scan engine's external contract)
// must reverse the result themselves.
func (h *topKHeap) Drain() []Result {
	out := make([]Result, 0, h.data.Len())
	for h.data.Len() > 0 {
		out = append(out, heap.Pop(&h.data).(Result))
	}

	return out
}
