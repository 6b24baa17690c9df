// Package bfs provides tunable options and error definitions
// for breadth-first search over an implicit graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilAdjacency is returned if a nil adjacency callback is passed.
	ErrNilAdjacency = errors.New("bfs: adjacency function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a node the search never reached.
	ErrUnreached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook whose node type
// differs from the search), it is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// onVisit holds a func(N, int) error; checked against N in BFS.
	onVisit any

	// filter holds a func(curr, next N) bool; checked against N in BFS.
	filter any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering and no visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N comparable](fn func(node N, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, next N) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
type Result[N comparable] struct {
	Start  N
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the path from the start node to dest, both included.
// Returns ErrUnreached if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	path := []N{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
