package disjointset_test

import (
	"testing"

	"github.com/katalvlaran/junctionbox/disjointset"
)

// benchmarkChain merges i with i+1 for all i and finds every element once.
func benchmarkChain(b *testing.B, newTracker disjointset.Factory, n int) {
	for k := 0; k < b.N; k++ {
		tr := newTracker(n)
		for i := 0; i+1 < n; i++ {
			_, _ = tr.Merge(i, i+1)
		}
		for i := 0; i < n; i++ {
			_, _ = tr.Find(i)
		}
	}
}

func BenchmarkForest_Chain1000(b *testing.B) { benchmarkChain(b, disjointset.ForestFactory, 1000) }

func BenchmarkLists_Chain1000(b *testing.B) { benchmarkChain(b, disjointset.ListsFactory, 1000) }
