package astar_test

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// ExampleEngine_FindPath routes across a small map with one wall segment.
func ExampleEngine_FindPath() {
	gg, err := gridgraph.Parse(
		"....\n"+
			".##.\n"+
			"....", gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	eng, err := astar.New(gg.Neighbors, gridgraph.Manhattan, gridgraph.Manhattan,
		astar.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := eng.FindPath(gridgraph.Point{X: 0, Y: 1}, gridgraph.Point{X: 3, Y: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("hops:", len(path))
	fmt.Println("cost:", astar.PathCost(gridgraph.Manhattan, gridgraph.Point{X: 0, Y: 1}, path))
	// Output:
	// hops: 5
	// cost: 5
}

// ExampleEngine_Invalidate shows that edits are only observed after Invalidate.
func ExampleEngine_Invalidate() {
	values := [][]int{{1, 1, 1}, {1, 1, 1}}
	gg, _ := gridgraph.From2D(values, gridgraph.Conn4)
	eng, _ := astar.New(gg.Neighbors, gridgraph.Manhattan, gridgraph.Manhattan,
		astar.WithLogger(slog.New(slog.DiscardHandler)))

	src, dst := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0}
	before, _ := eng.FindPath(src, dst)

	_ = gg.Set(gridgraph.Point{X: 1, Y: 0}, 0)
	stale, _ := eng.FindPath(src, dst)
	eng.Invalidate()
	after, _ := eng.FindPath(src, dst)

	fmt.Println(len(before), len(stale), len(after))
	// Output:
	// 2 2 4
}

// ExampleFromTable runs the engine over an explicit adjacency table.
func ExampleFromTable() {
	adj := astar.FromTable(map[string][]string{
		"home":   {"park", "market"},
		"park":   {"school"},
		"market": {"school"},
	})
	cost := map[[2]string]float64{
		{"home", "park"}:     4,
		{"home", "market"}:   1,
		{"park", "school"}:   1,
		{"market", "school"}: 2,
	}
	weight := func(u, v string) float64 { return cost[[2]string{u, v}] }
	zero := func(_, _ string) float64 { return 0 }

	eng, _ := astar.New(adj, zero, weight, astar.WithLogger(slog.New(slog.DiscardHandler)))
	res, _ := eng.Search("home", "school")
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [market school] 3
}
