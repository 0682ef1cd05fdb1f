package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/junctionbox/disjointset"
)

// ExampleForest joins four boxes into two circuits.
func ExampleForest() {
	f := disjointset.NewForest(4)
	f.Merge(0, 3)
	f.Merge(1, 2)
	joined, _ := f.Merge(3, 0)

	fmt.Println(f.Count(), f.Sets(), joined)
	// Output: 2 [[0 3] [1 2]] false
}
