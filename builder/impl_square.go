package builder

import "github.com/katalvlaran/junctionbox/geom"

// Square returns a Constructor for the corners (0,0,0), (s,0,0), (0,s,0),
// (s,s,0): four sides of length s and two diagonals of length s·√2.
func Square() Constructor {
	return func(cfg builderConfig) ([]geom.Point, error) {
		s := cfg.spacing
		return []geom.Point{
			cfg.at(0, 0, 0),
			cfg.at(s, 0, 0),
			cfg.at(0, s, 0),
			cfg.at(s, s, 0),
		}, nil
	}
}
