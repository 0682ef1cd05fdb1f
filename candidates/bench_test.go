package candidates_test

import (
	"testing"

	"github.com/katalvlaran/junctionbox/candidates"
)

// BenchmarkSort measures eager ordering of 500 points (124 750 pairs).
func BenchmarkSort(b *testing.B) {
	pts := scatter(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = candidates.Sort(pts)
	}
}

// BenchmarkQueue_First1000 measures heapify plus the first 1000 pops.
func BenchmarkQueue_First1000(b *testing.B) {
	pts := scatter(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, _ := candidates.NewQueue(pts)
		for k := 0; k < 1000; k++ {
			q.Next()
		}
	}
}
