package disjointset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownElement indicates an element index outside the tracked universe.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// Tracker answers "which component contains i?" and merges components.
type Tracker interface {
	// Find returns the representative of the component containing i.
	Find(i int) (int, error)
	// Merge joins the components containing a and b. It reports false, and
	// changes nothing, when they already share a component.
	Merge(a, b int) (bool, error)
	// Count is the current number of components.
	Count() int
	// Len is the number of elements.
	Len() int
	// Size is the number of elements in the component containing i.
	Size(i int) (int, error)
	// Sizes lists all component sizes, largest first.
	Sizes() []int
	// Sets lists all components with members ascending, largest component
	// first and ties broken by smallest member.
	Sets() [][]int
}

// Factory creates a Tracker over n singleton components.
type Factory func(n int) Tracker

func unknown(i, n int) error {
	return fmt.Errorf("element %d not in [0,%d): %w", i, n, ErrUnknownElement)
}

// sortSets orders members ascending and sets largest-first, ties by first member.
func sortSets(sets [][]int) [][]int {
	for _, s := range sets {
		sort.Ints(s)
	}
	sort.Slice(sets, func(a, b int) bool {
		if la, lb := len(sets[a]), len(sets[b]); la != lb {
			return la > lb
		}
		return sets[a][0] < sets[b][0]
	})
	return sets
}

func descending(sizes []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
