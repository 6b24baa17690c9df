package dijkstra

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/lvlath/pq"
)

// Dijkstra computes shortest distances from source to every node reachable
// through adj, using weight for edge costs.
//
// Returns:
//
//   - dist: node → minimum distance. Unreached nodes are absent.
//   - prev: node → predecessor on one shortest route, only if WithReturnPath
//     was given (nil otherwise). The source has no entry.
//   - err:  ErrNilAdjacency, ErrNilWeight, or ErrNegativeWeight (wrapped with
//     the offending edge).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra[N comparable](
	source N,
	adj func(node N) iter.Seq[N],
	weight func(from, to N) float64,
	opts ...Option,
) (map[N]float64, map[N]N, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate callbacks.
	if adj == nil {
		return nil, nil, ErrNilAdjacency
	}
	if weight == nil {
		return nil, nil, ErrNilWeight
	}

	// 3) Initialize runner state and run main loop.
	r := &runner[N]{
		adj:     adj,
		weight:  weight,
		options: cfg,
		dist:    map[N]float64{source: 0},
		visited: make(map[N]bool),
		open:    pq.New[N](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}
	r.open.Push(source, 0)

	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the route source → … → dest from a predecessor map returned
// with WithReturnPath. The result includes both endpoints. ok is false when
// dest was never reached.
func PathTo[N comparable](prev map[N]N, source, dest N) (path []N, ok bool) {
	path = []N{dest}
	for cur := dest; cur != source; {
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	adj     func(node N) iter.Seq[N] // adjacency callback
	weight  func(from, to N) float64 // edge weight callback
	options Options                  // configuration
	dist    map[N]float64            // node → best distance from source
	prev    map[N]N                  // node → predecessor (nil unless ReturnPath)
	visited map[N]bool               // node → distance finalized
	open    *pq.Queue[N]             // frontier keyed by distance
}

// process repeatedly settles the closest queued node and relaxes its edges
// until the frontier is empty.
func (r *runner[N]) process() error {
	for !r.open.IsEmpty() {
		u, err := r.open.Pop()
		if err != nil {
			return err
		}
		r.visited[u] = true

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each node adjacent to u and improves its distance if the
// route through u is strictly shorter and within MaxDistance.
func (r *runner[N]) relax(u N) error {
	du := r.dist[u]
	for v := range r.adj(u) {
		if r.visited[v] {
			continue // already final
		}

		w := r.weight(u, v)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}

		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first-found predecessor among equal routes.
		if dv, ok := r.dist[v]; ok && nd >= dv {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		r.open.Push(v, nd)
	}

	return nil
}
