package builder

import (
	"math"

	"github.com/katalvlaran/junctionbox/geom"
)

// Cloud returns a Constructor for n points drawn uniformly from
// [origin, origin+extent)³. With WithIntegral the coordinates are floored.
//
// Draw order per point is x, y, z, so a fixed seed gives a fixed cloud.
// Errors: ErrTooFewPoints (n < MinCloudPoints), ErrNeedRandSource.
// Complexity: O(n).
func Cloud(n int) Constructor {
	return func(cfg builderConfig) ([]geom.Point, error) {
		if err := validateMin(MethodCloud, n, MinCloudPoints); err != nil {
			return nil, err
		}
		if cfg.rng == nil {
			return nil, builderErrorf(MethodCloud, ErrNeedRandSource, "n=%d", n)
		}

		draw := func() float64 {
			v := cfg.rng.Float64() * cfg.extent
			if cfg.integral {
				v = math.Floor(v)
			}
			return v
		}

		pts := make([]geom.Point, n)
		for i := range pts {
			x := draw()
			y := draw()
			z := draw()
			pts[i] = cfg.at(x, y, z)
		}
		return pts, nil
	}
}
