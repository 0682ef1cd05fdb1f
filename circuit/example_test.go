package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/junctionbox/circuit"
	"github.com/katalvlaran/junctionbox/geom"
)

// ExampleBuild wires five boxes on a line with a detour box, checking in after one wire.
func ExampleBuild() {
	boxes := []geom.Point{
		{X: 0}, {X: 1}, {X: 3}, {X: 6}, {X: 10, Y: 10},
	}

	res, err := circuit.Build(boxes, circuit.WithThreshold(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("largest after 1 wire:", res.Threshold.Sizes, "product:", res.Threshold.Product)
	fmt.Println("last wire:", res.Final.A, res.Final.B)
	fmt.Println("x product:", res.Final.XProduct, "wires:", res.Wires)
	// Output:
	// largest after 1 wire: [2 1 1] product: 2
	// last wire: (x=6, y=0, z=0) (x=10, y=10, z=0)
	// x product: 60 wires: 4
}

// ExampleConstruction_Step drives the construction by hand.
func ExampleConstruction_Step() {
	boxes := []geom.Point{{X: 0}, {X: 2}, {X: 1}}

	c, err := circuit.New(boxes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for c.State() == circuit.Running {
		st, err := c.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%d-%d len=%g merged=%v circuits=%d\n",
			st.Edge.I, st.Edge.J, st.Edge.Dist, st.Merged, st.Components)
	}
	// Output:
	// 0-2 len=1 merged=true circuits=2
	// 1-2 len=1 merged=true circuits=1
}
