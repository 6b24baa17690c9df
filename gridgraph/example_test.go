// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous islands of walkable cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = wall, anything ≥1 = walkable
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - (0,2) touches (0,1), so the left cluster has five cells.
//   - Expect two islands.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %d cells\n", i, len(comp))
	}

	// Output:
	// components: 2
	// component 0: 5 cells
	// component 1: 5 cells
}

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and Render
////////////////////////////////////////////////////////////////////////////////

// ExampleParse builds a grid from a template and draws a hand-made route.
func ExampleParse() {
	gg, err := gridgraph.Parse("....\n.##.\n....", gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route := []gridgraph.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}}
	fmt.Println(gg.Render(gridgraph.Point{X: 0, Y: 1}, route, gridgraph.DefaultGlyphs()))

	// Output:
	// .**.
	// S##G
	// ....
}
