package builder

import "github.com/katalvlaran/junctionbox/geom"

// Line returns a Constructor for n points at x = 0, s, 2s, … on the X axis.
// Errors: ErrTooFewPoints (n < MinLinePoints).
func Line(n int) Constructor {
	return func(cfg builderConfig) ([]geom.Point, error) {
		if err := validateMin(MethodLine, n, MinLinePoints); err != nil {
			return nil, err
		}
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = cfg.at(float64(i)*cfg.spacing, 0, 0)
		}
		return pts, nil
	}
}
