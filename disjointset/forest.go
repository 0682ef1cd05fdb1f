package disjointset

// Forest is a union-find forest over 0..n-1.
type Forest struct {
	parent []int // parent[i] == i for roots
	size   []int // valid for roots only
	count  int
}

var _ Tracker = (*Forest)(nil)

// NewForest returns n singleton components.
// Complexity: O(n).
func NewForest(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

// ForestFactory adapts NewForest to Factory.
func ForestFactory(n int) Tracker { return NewForest(n) }

// Find returns the root of i, halving the path on the way up.
func (f *Forest) Find(i int) (int, error) {
	if i < 0 || i >= len(f.parent) {
		return 0, unknown(i, len(f.parent))
	}
	return f.root(i), nil
}

func (f *Forest) root(i int) int {
	for f.parent[i] != i {
		// Path halving: point i at its grandparent and jump there.
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}
	return i
}

// Merge attaches the smaller tree under the larger root.
func (f *Forest) Merge(a, b int) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.count--

	return true, nil
}

// Count implements Tracker.
func (f *Forest) Count() int { return f.count }

// Len implements Tracker.
func (f *Forest) Len() int { return len(f.parent) }

// Size implements Tracker.
func (f *Forest) Size(i int) (int, error) {
	r, err := f.Find(i)
	if err != nil {
		return 0, err
	}
	return f.size[r], nil
}

// Sizes implements Tracker. Complexity: O(n log n).
func (f *Forest) Sizes() []int {
	out := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			out = append(out, f.size[i])
		}
	}
	return descending(out)
}

// Sets implements Tracker. Complexity: O(n log n).
func (f *Forest) Sets() [][]int {
	byRoot := make(map[int][]int, f.count)
	for i := range f.parent {
		r := f.root(i)
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, s := range byRoot {
		out = append(out, s)
	}
	return sortSets(out)
}
