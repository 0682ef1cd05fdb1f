package disjointset

// Lists keeps every component as an explicit slice of members. The
// representative of a component is its first member, which never changes
// because merges append the other component onto it.
type Lists struct {
	sets [][]int
	n    int
}

var _ Tracker = (*Lists)(nil)

// NewLists returns n singleton components.
func NewLists(n int) *Lists {
	l := &Lists{sets: make([][]int, n), n: n}
	for i := 0; i < n; i++ {
		l.sets[i] = []int{i}
	}
	return l
}

// ListsFactory adapts NewLists to Factory.
func ListsFactory(n int) Tracker { return NewLists(n) }

// position is the index into l.sets of the component containing i.
func (l *Lists) position(i int) (int, error) {
	if i < 0 || i >= l.n {
		return 0, unknown(i, l.n)
	}
	for k, s := range l.sets {
		for _, m := range s {
			if m == i {
				return k, nil
			}
		}
	}
	// Every known element lives in some set.
	return 0, unknown(i, l.n)
}

// Find implements Tracker. Complexity: O(n).
func (l *Lists) Find(i int) (int, error) {
	k, err := l.position(i)
	if err != nil {
		return 0, err
	}
	return l.sets[k][0], nil
}

// Merge appends b's component to a's and drops b's slot. Complexity: O(n).
func (l *Lists) Merge(a, b int) (bool, error) {
	ka, err := l.position(a)
	if err != nil {
		return false, err
	}
	kb, err := l.position(b)
	if err != nil {
		return false, err
	}
	if ka == kb {
		return false, nil
	}
	l.sets[ka] = append(l.sets[ka], l.sets[kb]...)
	l.sets = append(l.sets[:kb], l.sets[kb+1:]...)

	return true, nil
}

// Count implements Tracker.
func (l *Lists) Count() int { return len(l.sets) }

// Len implements Tracker.
func (l *Lists) Len() int { return l.n }

// Size implements Tracker.
func (l *Lists) Size(i int) (int, error) {
	k, err := l.position(i)
	if err != nil {
		return 0, err
	}
	return len(l.sets[k]), nil
}

// Sizes implements Tracker.
func (l *Lists) Sizes() []int {
	out := make([]int, len(l.sets))
	for k, s := range l.sets {
		out[k] = len(s)
	}
	return descending(out)
}

// Sets implements Tracker.
func (l *Lists) Sets() [][]int {
	out := make([][]int, len(l.sets))
	for k, s := range l.sets {
		out[k] = append([]int(nil), s...)
	}
	return sortSets(out)
}
