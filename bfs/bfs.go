package bfs

import (
	"context"
	"fmt"
	"iter"
)

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	adj      func(node N) iter.Seq[N]
	ctx      context.Context
	maxDepth int
	onVisit  func(node N, depth int) error
	filter   func(curr, next N) bool
	queue    []N
	res      *Result[N]
}

// BFS runs breadth-first search from start over the graph described by adj,
// applying any number of functional Options.
// Returns ErrNilAdjacency or ErrOptionViolation for invalid input, the
// context error on cancellation, or any wrapped OnVisit error. The partial
// result is returned alongside a hook or context error.
func BFS[N comparable](start N, adj func(node N) iter.Seq[N], opts ...Option) (*Result[N], error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		adj:      adj,
		ctx:      o.Ctx,
		maxDepth: o.MaxDepth,
		onVisit:  func(N, int) error { return nil },
		filter:   func(_, _ N) bool { return true },
		res: &Result[N]{
			Start:  start,
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(N, int) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
		}
		w.onVisit = fn
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(N, N) bool)
		if !ok {
			return nil, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filter)
		}
		w.filter = fn
	}

	// Seed queue with start node (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[cur]

		w.res.Order = append(w.res.Order, cur)
		if err := w.onVisit(cur, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", cur, err)
		}
		if w.maxDepth > 0 && depth >= w.maxDepth {
			continue
		}
		w.enqueueNeighbors(cur, depth+1)
	}

	return nil
}

// enqueueNeighbors records every unseen, unfiltered neighbor of cur at depth d.
func (w *walker[N]) enqueueNeighbors(cur N, d int) {
	for next := range w.adj(cur) {
		if !w.filter(cur, next) {
			continue
		}
		if _, seen := w.res.Depth[next]; seen {
			continue
		}
		w.res.Depth[next] = d
		w.res.Parent[next] = cur
		w.queue = append(w.queue, next)
	}
}
