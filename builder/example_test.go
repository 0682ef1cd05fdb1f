package builder_test

import (
	"fmt"

	"github.com/katalvlaran/junctionbox/builder"
)

// ExampleBuildPoints composes a short line with a shifted square.
func ExampleBuildPoints() {
	pts, err := builder.BuildPoints(
		[]builder.BuilderOption{builder.WithSpacing(10)},
		builder.Line(2),
		builder.Square(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range pts {
		fmt.Println(p)
	}
	// Output:
	// (x=0, y=0, z=0)
	// (x=10, y=0, z=0)
	// (x=0, y=0, z=0)
	// (x=10, y=0, z=0)
	// (x=0, y=10, z=0)
	// (x=10, y=10, z=0)
}
