package gridgraph

import "math"

// Euclidean is the straight-line distance between cell centers.
func Euclidean(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Manhattan is the sum of the absolute coordinate differences.
func Manhattan(a, b Point) float64 {
	dx, dy := absDiff(a, b)
	return dx + dy
}

// Chebyshev is the larger absolute coordinate difference.
func Chebyshev(a, b Point) float64 {
	dx, dy := absDiff(a, b)
	return math.Max(dx, dy)
}

// Octile is the cost of the cheapest 8-connected walk with unit orthogonal
// and √2 diagonal steps when no walls are in the way.
func Octile(a, b Point) float64 {
	dx, dy := absDiff(a, b)
	lo, hi := math.Min(dx, dy), math.Max(dx, dy)
	return hi + (math.Sqrt2-1)*lo
}

// Zero is the null heuristic; with it A* degenerates to Dijkstra.
func Zero(_, _ Point) float64 { return 0 }

func absDiff(a, b Point) (float64, float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y))
}
