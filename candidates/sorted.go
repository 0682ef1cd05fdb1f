package candidates

import (
	"sort"

	"github.com/katalvlaran/junctionbox/geom"
)

// Sorted is the eager Source: the full edge list ordered once, then consumed
// front to back.
type Sorted struct {
	edges []Edge
	next  int
}

// Sort generates all candidate edges and orders them by ascending distance.
// sort.SliceStable keeps generation order among equal distances.
//
// Errors: ErrIncomparable (from Generate).
// Complexity: O(n² log n) time, O(n²) memory.
func Sort(points []geom.Point) (*Sorted, error) {
	edges, err := Generate(points)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Dist < edges[b].Dist
	})

	return &Sorted{edges: edges}, nil
}

// Next implements Source.
func (s *Sorted) Next() (Edge, bool) {
	if s.next >= len(s.edges) {
		return Edge{}, false
	}
	e := s.edges[s.next]
	s.next++

	return e, true
}

// Remaining implements Source.
func (s *Sorted) Remaining() int { return len(s.edges) - s.next }

// Len implements Source.
func (s *Sorted) Len() int { return len(s.edges) }

// Edges returns a copy of the full ordered sequence, consumed or not.
func (s *Sorted) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}
