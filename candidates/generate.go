package candidates

import (
	"fmt"

	"github.com/katalvlaran/junctionbox/geom"
)

// Generate emits every unordered pair {i, j} with i < j exactly once, in
// lexicographic (i, j) order, together with its distance.
//
// Errors: ErrIncomparable if any distance is NaN or ±Inf.
// Complexity: O(n²) time and memory.
func Generate(points []geom.Point) ([]Edge, error) {
	n := len(points)
	edges := make([]Edge, 0, Pairs(n))

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := geom.Distance(points[i], points[j])
			if !orderable(d) {
				return nil, fmt.Errorf("pair (%d,%d) %v–%v: %w", i, j, points[i], points[j], ErrIncomparable)
			}
			edges = append(edges, Edge{I: i, J: j, Dist: d})
		}
	}

	return edges, nil
}
