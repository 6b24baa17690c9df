// Package lvlath is a small toolkit for route finding over graphs you never
// have to build: the graph is described by callbacks, and nodes are
// discovered only as a search reaches them.
//
// 🚀 What is inside?
//
//	pq/           priority queue with stable FIFO tie-break and lazy deletion
//	astar/        A* engine with a memoizing (source, goal) route cache
//	dijkstra/     single-source shortest paths over the same callbacks
//	bfs/          unweighted breadth-first search, depths and parent links
//	gridgraph/    2D grids and text maps as adjacency, distances, rendering
//	cmd/gridpath  command line solver for text map files
//
// ✨ The callback contract
//
//   - adjacency(node) iter.Seq[N]: nodes reachable in one move
//   - heuristic(node, goal) float64: admissible estimate of the rest
//   - weight(from, to) float64: non-negative cost of one move
//
// A found route is cached until Invalidate is called; callers that edit the
// graph (walls, weights, adjacency) must invalidate before the next query.
//
// Quick ASCII example:
//
//	S . . #      S * * #
//	. # . #  →   . # * #
//	. # . G      . # . G   (route drawn by gridgraph.Render)
//
//	go get github.com/katalvlaran/lvlath
package lvlath
