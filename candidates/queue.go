package candidates

import (
	"container/heap"

	"github.com/katalvlaran/junctionbox/geom"
)

// edgeHeap is a min-heap of edges under before.
type edgeHeap []Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(a, b int) bool { return before(h[a], h[b]) }
func (h edgeHeap) Swap(a, b int)      { h[a], h[b] = h[b], h[a] }

// Push adds an edge; used by container/heap.
func (h *edgeHeap) Push(x interface{}) {
	*h = append(*h, x.(Edge))
}

// Pop removes the last element; used by container/heap.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Queue is the lazy Source: edges are heapified in O(E) and only ordered as
// they are popped.
type Queue struct {
	h     edgeHeap
	total int
}

// NewQueue builds a min-heap over all candidate edges of points.
//
// Errors: ErrIncomparable (from Generate).
// Complexity: O(n²) to build; Next is O(log n).
func NewQueue(points []geom.Point) (*Queue, error) {
	edges, err := Generate(points)
	if err != nil {
		return nil, err
	}
	q := &Queue{h: edgeHeap(edges), total: len(edges)}
	heap.Init(&q.h)

	return q, nil
}

// Next implements Source.
func (q *Queue) Next() (Edge, bool) {
	if q.h.Len() == 0 {
		return Edge{}, false
	}
	return heap.Pop(&q.h).(Edge), true
}

// Remaining implements Source.
func (q *Queue) Remaining() int { return q.h.Len() }

// Len implements Source.
func (q *Queue) Len() int { return q.total }
