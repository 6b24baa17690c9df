package astar

import (
	"iter"
	"slices"
)

// FromTable adapts a precomputed adjacency table into an Adjacency callback.
// Nodes missing from the table have no neighbors.
func FromTable[N comparable](table map[N][]N) Adjacency[N] {
	return func(node N) iter.Seq[N] {
		return slices.Values(table[node])
	}
}

// PathCost sums w over consecutive pairs of source followed by path.
// An empty path costs 0.
func PathCost[N comparable](w Weight[N], source N, path []N) float64 {
	total := 0.0
	prev := source
	for _, node := range path {
		total += w(prev, node)
		prev = node
	}

	return total
}
