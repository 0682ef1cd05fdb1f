package builder

import (
	"math/rand"

	"github.com/katalvlaran/junctionbox/geom"
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches NewRand(seed); see NewRand for the seed==0 policy.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = NewRand(seed) }
}

// WithExtent sets the side of the Cloud bounding cube. Panics if e <= 0.
func WithExtent(e float64) BuilderOption {
	if !(e > 0) {
		panic("builder: WithExtent(e<=0)")
	}
	return func(c *builderConfig) { c.extent = e }
}

// WithSpacing sets the neighbour distance for Lattice, Line and Square.
// Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithOrigin shifts every generated point by o. Panics on non-finite o.
func WithOrigin(o geom.Point) BuilderOption {
	if !o.Finite() {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) { c.origin = o }
}

// WithIntegral floors Cloud coordinates to whole numbers, like puzzle inputs.
func WithIntegral() BuilderOption {
	return func(c *builderConfig) { c.integral = true }
}
