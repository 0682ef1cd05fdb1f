package candidates

import (
	"errors"
	"math"
)

// ErrIncomparable indicates a distance that cannot be placed in a total order.
var ErrIncomparable = errors.New("candidates: distance is not comparable")

// Edge is a candidate wire between boxes I and J (indices into the point
// slice, I < J) of length Dist.
type Edge struct {
	I, J int
	Dist float64
}

// Source yields candidate edges shortest first.
type Source interface {
	// Next pops the shortest remaining edge; ok is false once exhausted.
	Next() (e Edge, ok bool)
	// Remaining is the number of edges not yet popped.
	Remaining() int
	// Len is the total number of edges the source started with.
	Len() int
}

// Pairs returns C(n,2), the number of candidate edges for n points.
func Pairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// before is the total order shared by both sources: distance, then generation order.
func before(a, b Edge) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

// IsSorted reports whether edges are in non-decreasing distance order.
func IsSorted(edges []Edge) bool {
	for k := 1; k < len(edges); k++ {
		if edges[k-1].Dist > edges[k].Dist {
			return false
		}
	}
	return true
}

func orderable(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}
