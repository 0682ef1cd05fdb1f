package builder

import "github.com/katalvlaran/junctionbox/geom"

// Coincident returns a Constructor for n separate records at p (shifted by
// the origin). The records are distinct boxes joined by zero-length wires.
// Errors: ErrTooFewPoints (n < MinCoincidentPoints).
func Coincident(n int, p geom.Point) Constructor {
	return func(cfg builderConfig) ([]geom.Point, error) {
		if err := validateMin(MethodCoincident, n, MinCoincidentPoints); err != nil {
			return nil, err
		}
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = cfg.at(p.X, p.Y, p.Z)
		}
		return pts, nil
	}
}
