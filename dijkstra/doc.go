// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over an implicit graph with non-negative edge weights.
//
// Overview:
//
//   - The graph is described by the same callbacks as package astar: an
//     adjacency function yielding the nodes reachable from a node, and a
//     weight function for each such edge. Nothing is materialized up front.
//   - Dijkstra computes the minimum cost from one source to every reachable
//     node, expanding nodes in order of increasing distance.
//   - The frontier is a pq.Queue, so a cheaper route to a queued node updates
//     its priority in place (decrease-key through lazy deletion) instead of
//     leaving duplicate live entries behind.
//
// When to use:
//
//   - As an exhaustive baseline: the distances it returns are the reference
//     against which heuristic searches (A*) are checked for optimality.
//   - Whenever all distances from one node are needed at once.
//
// Key features:
//
//   - WithReturnPath: also return a predecessor map; PathTo rebuilds routes.
//   - WithMaxDistance: do not settle nodes farther than the given cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reachable subgraph.
//   - Space: O(V) for distances, predecessors and the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilAdjacency:   adjacency callback is nil.
//   - ErrNilWeight:      weight callback is nil.
//   - ErrNegativeWeight: the weight callback returned a negative or NaN cost.
//   - ErrBadMaxDistance: raised (via panic) by WithMaxDistance for negative caps.
//
// Thread safety:
//
//   - Dijkstra holds no shared state; concurrent calls are safe as long as
//     the callbacks themselves are.
package dijkstra
