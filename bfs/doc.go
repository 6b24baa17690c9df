// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - The graph is a callback: adj(node) yields the nodes reachable in one
//     step, the same shape astar.Adjacency and gridgraph.Neighbors use.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering via
//     WithFilterNeighbor, and a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order adj yields them, so the visit
//	sequence is fully reproducible for a deterministic adj.
//
// Complexity (V = reached nodes, E = edges probed)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(gridgraph.Point{}, gg.Neighbors,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(p gridgraph.Point, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilAdjacency     if adj is nil.
//   - ErrOptionViolation  for a negative MaxDepth or a hook of the wrong node type.
//   - ErrUnreached        from Result.PathTo for a node never reached.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
