package gridgraph

import "github.com/katalvlaran/lvlath/bfs"

// ConnectedComponents finds all contiguous regions (“islands”) of walkable
// cells, according to gg.Conn connectivity. Each component lists its cells
// in BFS discovery order; components are ordered by their first cell in
// row-major order.
//
// Two cells can be joined by a route iff they share a component.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Point

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			start := Point{X: x, Y: y}
			if !gg.Walkable(start) || seen[gg.index(x, y)] {
				continue // wall or already collected
			}
			// no options and a non-nil adjacency: BFS cannot fail
			res, _ := bfs.BFS(start, gg.Neighbors)
			for _, p := range res.Order {
				seen[gg.index(p.X, p.Y)] = true
			}
			comps = append(comps, res.Order)
		}
	}

	return comps
}
