// Package gridgraph turns a 2D grid of cells into the callbacks a path engine
// consumes, without materializing an edge list.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥ Threshold
//     are walkable, the rest are walls.
//   - Parse builds a grid from a text template: one row per line, the wall
//     rune (default '#') is blocked, every other rune is open ground.
//   - Neighbors is the adjacency callback: walkable in-bounds cells around a
//     point, in a fixed offset order (Conn4 or Conn8).
//   - Euclidean, Manhattan, Octile and Chebyshev are ready-made weight and
//     heuristic functions.
//   - ConnectedComponents reports walkable islands, so callers can tell in
//     advance whether two cells can be connected at all.
//   - Render draws the grid with a route marked on it.
//
// Why:
//
//   - Game maps and editors: build once, hand Neighbors to astar.New, call
//     Set when the user edits a tile and invalidate the engine afterwards.
//
// Complexity:
//
//   - NewGridGraph / Parse:  O(W×H) time and memory.
//   - Neighbors:             O(d) per call (d = 4 or 8).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H).
//   - Render:                O(W×H + len(path)).
//
// Options:
//
//   - GridOptions.Threshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Wall: wall rune used by Parse.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Set addressed a cell outside the grid.
//
// Admissibility of the distance functions as heuristics:
//
//   - Conn8 with Euclidean weights: Euclidean and Octile are admissible.
//   - Conn4 with unit steps: Manhattan is admissible and consistent.
//   - Chebyshev never overestimates on either connectivity.
package gridgraph
