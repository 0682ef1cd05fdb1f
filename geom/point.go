package geom

import (
	"math"
	"strconv"
	"strings"
)

// Point is a coordinate of a junction box in 3-D space.
type Point struct {
	X, Y, Z float64
}

// Distance returns the straight-line distance between a and b:
// sqrt((ax-bx)² + (ay-by)² + (az-bz)²).
//
// The result is symmetric and Distance(a, a) == 0. Any pair of finite points
// whose distance fits in a float64 gets a finite result: when the squared
// terms overflow or underflow, the differences are rescaled first.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	s := dx*dx + dy*dy + dz*dz
	if s >= minUnscaled && !math.IsInf(s, 0) {
		return math.Sqrt(s)
	}
	if dx == 0 && dy == 0 && dz == 0 {
		return 0
	}

	// The distance is at least the largest difference.
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) || math.IsInf(dz, 0) {
		return math.Inf(1)
	}
	return scaledNorm(dx, dy, dz)
}

// minUnscaled is the smallest sum of squares computed without rescaling.
const minUnscaled = 0x1p-960

// scaledNorm divides out the largest component before squaring, so neither
// overflow nor underflow can occur. A NaN component yields NaN.
func scaledNorm(dx, dy, dz float64) float64 {
	m := math.Max(math.Abs(dx), math.Max(math.Abs(dy), math.Abs(dz)))
	dx, dy, dz = dx/m, dy/m, dz/m
	return m * math.Sqrt(dx*dx+dy*dy+dz*dz)
}

// Equal reports whether p and q have exactly the same coordinates.
// No tolerance is applied.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}

// Finite reports whether none of the coordinates is NaN or ±Inf.
func (p Point) Finite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// String renders p as "(x=1, y=2.5, z=-3)" using the shortest exact decimal form.
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteString("(x=")
	sb.WriteString(formatCoord(p.X))
	sb.WriteString(", y=")
	sb.WriteString(formatCoord(p.Y))
	sb.WriteString(", z=")
	sb.WriteString(formatCoord(p.Z))
	sb.WriteString(")")

	return sb.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
