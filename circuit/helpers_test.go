package circuit_test

import (
	"math"
	"os"
	"testing"

	"github.com/katalvlaran/junctionbox/builder"
	"github.com/katalvlaran/junctionbox/disjointset"
	"github.com/katalvlaran/junctionbox/geom"
	"github.com/stretchr/testify/require"
)

// loadSample reads the 20-box sample from testdata.
func loadSample(t testing.TB) []geom.Point {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()
	pts, err := geom.ReadPoints(f)
	require.NoError(t, err)
	require.Len(t, pts, 20)
	return pts
}

// cloud returns n seeded random integral points.
func cloud(t testing.TB, n int, seed int64) []geom.Point {
	t.Helper()
	pts, err := builder.BuildPoints(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithExtent(1000), builder.WithIntegral()},
		builder.Cloud(n),
	)
	require.NoError(t, err)
	return pts
}

// lattice returns a tie-heavy grid.
func lattice(t testing.TB, nx, ny, nz int) []geom.Point {
	t.Helper()
	pts, err := builder.BuildPoints(nil, builder.Lattice(nx, ny, nz))
	require.NoError(t, err)
	return pts
}

// primLength is an independent O(n²) Prim over the dense distance matrix,
// used as an oracle for the total tree length.
func primLength(pts []geom.Point) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}
	inTree := make([]bool, n)
	best := make([]float64, n)
	for v := range best {
		best[v] = math.Inf(1)
	}
	best[0] = 0

	total := 0.0
	for it := 0; it < n; it++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if d := geom.Distance(pts[u], pts[v]); !inTree[v] && d < best[v] {
				best[v] = d
			}
		}
	}
	return total
}

// stuckTracker reports every merge as successful without joining anything,
// so a construction can never complete.
type stuckTracker struct {
	*disjointset.Forest
}

func (s stuckTracker) Merge(a, b int) (bool, error) {
	if _, err := s.Find(a); err != nil {
		return false, err
	}
	return true, nil
}
