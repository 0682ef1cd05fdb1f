package circuit_test

import (
	"testing"

	"github.com/katalvlaran/junctionbox/circuit"
	"github.com/katalvlaran/junctionbox/disjointset"
)

// BenchmarkBuild_Eager measures a full run over 400 random boxes.
func BenchmarkBuild_Eager(b *testing.B) {
	pts := cloud(b, 400, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.Build(pts, circuit.WithThreshold(100))
	}
}

// BenchmarkBuild_Lazy is BenchmarkBuild_Eager with the heap source.
func BenchmarkBuild_Lazy(b *testing.B) {
	pts := cloud(b, 400, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.Build(pts, circuit.WithThreshold(100), circuit.WithOrdering(circuit.OrderLazy))
	}
}

// BenchmarkBuild_Lists uses the linear list-of-sets tracker.
func BenchmarkBuild_Lists(b *testing.B) {
	pts := cloud(b, 400, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.Build(pts, circuit.WithThreshold(100), circuit.WithTracker(disjointset.ListsFactory))
	}
}
