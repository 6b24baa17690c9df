// Package astar implements a node-agnostic A* shortest-path engine over an
// implicit graph, with memoization of found routes.
//
// Overview:
//
//   - The graph is never materialized. It is probed on demand through three
//     caller-supplied pure functions:
//     • Adjacency(node) iter.Seq[N]   – nodes directly reachable from node.
//     • Weight(from, to) float64      – non-negative cost of one edge.
//     • Heuristic(node, goal) float64 – estimate of the remaining cost.
//   - Engine.FindPath answers (source, goal) queries. The first query for a
//     pair runs one A* search; successful results are cached and returned on
//     later queries without touching any callback.
//   - Engine.Invalidate clears the whole cache. The engine cannot detect graph
//     edits on its own: whoever owns the graph must call Invalidate after any
//     change to adjacency, weights or traversability, or stale routes will be
//     returned.
//
// Algorithm:
//
//   - shortest[source] = 0, source is pushed with priority 0.
//   - Pop the minimum-priority node. If it is the goal, the route is rebuilt by
//     following parent links back to the source (the source itself excluded).
//   - Otherwise relax each adjacent node: candidate = shortest[cur] + w(cur, adj).
//     A strictly smaller candidate updates shortest/parent and pushes adj with
//     priority candidate + h(adj, goal) (decrease-key through lazy deletion in
//     package pq).
//   - If the queue empties first, the goal is unreachable (ErrNoPath).
//
// Guarantees and preconditions:
//
//   - With an admissible and consistent heuristic the returned route is of
//     least total weight. The engine does not verify either property.
//   - Equal-priority candidates are expanded in insertion order, so routes are
//     reproducible across runs when several equal-cost alternatives exist.
//   - A negative (or NaN) weight aborts the search with ErrNegativeWeight.
//
// Trivial queries:
//
//   - FindPath(x, x) succeeds with an empty, non-nil route. No callback is
//     invoked and nothing is cached.
//
// Cache policy:
//
//   - Unbounded by default; entries live until Invalidate.
//   - WithMaxEntries(n) opts into an LRU bound of n pairs.
//
// Observability:
//
//   - WithLogger: debug-level slog records for hits, misses and outcomes.
//   - WithMeterProvider: OpenTelemetry counters and a duration histogram.
//   - Engine.Stats: cumulative counters for tests and diagnostics.
//
// Thread safety:
//
//   - Engine performs no locking. Calls to FindPath, Search and Invalidate on
//     the same Engine must be serialized by the caller, or use one Engine per
//     goroutine.
//   - There is no cancellation; a non-terminating adjacency sequence blocks
//     the caller. Wrap calls at a higher layer if bounded latency is needed.
//
// Example:
//
//	eng, err := astar.New(adj, heuristic, weight)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := eng.FindPath(from, to)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // goal unreachable
//	}
package astar
