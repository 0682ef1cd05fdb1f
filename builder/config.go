package builder

import (
	"math/rand"

	"github.com/katalvlaran/junctionbox/geom"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means “no randomness”
	extent   float64    // Cloud cube side
	spacing  float64    // Lattice/Line/Square step
	origin   geom.Point // offset added to every generated point
	integral bool       // floor Cloud coordinates to integers
}

// newBuilderConfig applies opts over deterministic defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		extent:  DefaultExtent,
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// at offsets p by the configured origin.
func (c builderConfig) at(x, y, z float64) geom.Point {
	return geom.Point{X: c.origin.X + x, Y: c.origin.Y + y, Z: c.origin.Z + z}
}
