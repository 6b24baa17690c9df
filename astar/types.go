package astar

import (
	"errors"
	"iter"
)

// Sentinel errors returned by the engine.
var (
	// ErrNoPath indicates that the goal cannot be reached from the source.
	ErrNoPath = errors.New("astar: no path connecting these nodes")

	// ErrNegativeWeight indicates that the weight callback returned a negative or NaN cost.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNilAdjacency indicates that New was called without an adjacency callback.
	ErrNilAdjacency = errors.New("astar: adjacency function is nil")

	// ErrNilHeuristic indicates that New was called without a heuristic callback.
	ErrNilHeuristic = errors.New("astar: heuristic function is nil")

	// ErrNilWeight indicates that New was called without a weight callback.
	ErrNilWeight = errors.New("astar: weight function is nil")

	// ErrOptionViolation is returned by New when an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Adjacency returns every node directly reachable from node.
// The sequence is consumed once per expansion and is never cached.
type Adjacency[N comparable] func(node N) iter.Seq[N]

// Heuristic estimates the remaining cost from node to goal.
type Heuristic[N comparable] func(node, goal N) float64

// Weight returns the non-negative cost of the edge from → to.
type Weight[N comparable] func(from, to N) float64

// Result holds the outcome of a single search.
//
//   - Path: route from the node after the source up to and including the goal.
//   - Cost: total weight of the route (0 when source == goal).
//   - Expanded: number of nodes whose adjacency was probed.
type Result[N comparable] struct {
	Path     []N
	Cost     float64
	Expanded int
}

// Stats are cumulative counters of an Engine.
// Entries is the current number of cached pairs; the others only grow.
type Stats struct {
	Hits      int // FindPath answered from the cache
	Misses    int // FindPath had to search
	Searches  int // A* runs, including direct Search calls
	Failures  int // searches that ended in an error
	Expanded  int // total expansions over all searches
	Evictions int // entries dropped by the LRU bound
	Entries   int // pairs currently cached
}
