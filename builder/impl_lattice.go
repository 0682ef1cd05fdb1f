package builder

import "github.com/katalvlaran/junctionbox/geom"

// Lattice returns a Constructor for an nx×ny×nz grid with the configured
// spacing, x varying fastest, then y, then z.
//
// Every nearest-neighbour pair has exactly the same distance, which makes the
// lattice a stress fixture for tie-breaking.
// Errors: ErrTooFewPoints if any side < MinLatticeSide.
// Complexity: O(nx·ny·nz).
func Lattice(nx, ny, nz int) Constructor {
	return func(cfg builderConfig) ([]geom.Point, error) {
		for _, side := range []int{nx, ny, nz} {
			if err := validateMin(MethodLattice, side, MinLatticeSide); err != nil {
				return nil, err
			}
		}

		s := cfg.spacing
		pts := make([]geom.Point, 0, nx*ny*nz)
		for k := 0; k < nz; k++ {
			for j := 0; j < ny; j++ {
				for i := 0; i < nx; i++ {
					pts = append(pts, cfg.at(float64(i)*s, float64(j)*s, float64(k)*s))
				}
			}
		}
		return pts, nil
	}
}
