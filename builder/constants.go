package builder

// Constructor names used as error context.
const (
	MethodCloud      = "Cloud"
	MethodLattice    = "Lattice"
	MethodLine       = "Line"
	MethodSquare     = "Square"
	MethodCoincident = "Coincident"
)

// Minimum sizes.
const (
	// MinCloudPoints is the smallest random cloud worth wiring.
	MinCloudPoints = 1
	// MinLatticeSide is the smallest extent along each lattice axis.
	MinLatticeSide = 1
	// MinLinePoints is the smallest line.
	MinLinePoints = 1
	// MinCoincidentPoints is the smallest stack of coincident records.
	MinCoincidentPoints = 1
)

// Defaults for builderConfig.
const (
	// DefaultExtent is the side of the Cloud bounding cube, matching puzzle inputs (0..99999).
	DefaultExtent = 100000.0
	// DefaultSpacing is the distance between neighbours in Lattice, Line and Square.
	DefaultSpacing = 1.0
)
