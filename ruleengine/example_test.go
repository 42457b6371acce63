package ruleengine_test

import (
	"fmt"

	"github.com/NEWSLabNTU/point-cloud-filter/item"
	"github.com/NEWSLabNTU/point-cloud-filter/point"
	"github.com/NEWSLabNTU/point-cloud-filter/ruleengine"
)

// ExampleBuild demonstrates binding a single named item to a boolean
// expression and evaluating it against two points.
func ExampleBuild() {
	// 1) Build a 10x10 box centered at the origin, unbounded in Z.
	zone, err := item.NewPlanarBox(item.PlanarBoxConfig{Width: 10, Height: 10})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Compile the expression "zone" against that single named item.
	engine, err := ruleengine.Build("zone", map[string]interface{}{"zone": zone})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) A point near the origin is inside the box; a far point is not.
	fmt.Println(engine.Contains(point.New(0, 0, 0)))
	fmt.Println(engine.Contains(point.New(100, 100, 0)))
	// Output:
	// true
	// false
}
