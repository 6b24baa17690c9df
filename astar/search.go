package astar

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlath/pq"
)

// runner holds the scratch state of a single search. It is never reused.
type runner[N comparable] struct {
	e        *Engine[N]
	source   N
	goal     N
	shortest map[N]float64 // best known cost from source; absent ⇒ +∞
	parent   map[N]N       // predecessor on the best known route; source has none
	open     *pq.Queue[N]  // frontier keyed by f = g + h
	expanded int
}

func newRunner[N comparable](e *Engine[N], source, goal N) *runner[N] {
	return &runner[N]{
		e:        e,
		source:   source,
		goal:     goal,
		shortest: make(map[N]float64),
		parent:   make(map[N]N),
		open:     pq.New[N](),
	}
}

// cost returns the best known cost of n and whether one is known.
// An unknown node costs +∞.
func (r *runner[N]) cost(n N) (float64, bool) {
	c, ok := r.shortest[n]
	if !ok {
		return math.Inf(1), false
	}

	return c, true
}

// run executes the main loop until the goal is popped or the frontier drains.
func (r *runner[N]) run() (Result[N], error) {
	r.shortest[r.source] = 0
	r.open.Push(r.source, 0)

	for !r.open.IsEmpty() {
		cur, err := r.open.Pop()
		if err != nil {
			return Result[N]{Expanded: r.expanded}, err
		}

		if cur == r.goal {
			return Result[N]{
				Path:     r.reconstruct(),
				Cost:     r.shortest[cur],
				Expanded: r.expanded,
			}, nil
		}

		r.expanded++
		r.e.onExpand(cur)
		if err = r.relax(cur); err != nil {
			return Result[N]{Expanded: r.expanded}, err
		}
	}

	return Result[N]{Expanded: r.expanded}, fmt.Errorf("%w: %v → %v", ErrNoPath, r.source, r.goal)
}

// relax examines every node adjacent to cur and records strictly cheaper routes.
func (r *runner[N]) relax(cur N) error {
	base := r.shortest[cur]
	for next := range r.e.adj(cur) {
		w := r.e.weight(cur, next)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, cur, next, w)
		}

		candidate := base + w
		if known, _ := r.cost(next); candidate >= known {
			continue
		}
		r.shortest[next] = candidate
		r.parent[next] = cur
		r.open.Push(next, candidate+r.e.heuristic(next, r.goal))
	}

	return nil
}

// reconstruct walks parent links from the goal back to the source and returns
// the route in source → goal order, the source itself excluded.
func (r *runner[N]) reconstruct() []N {
	path := make([]N, 0)
	for node := r.goal; node != r.source; {
		path = append(path, node)
		prev, ok := r.parent[node]
		if !ok {
			break
		}
		node = prev
	}
	slices.Reverse(path)

	return path
}
