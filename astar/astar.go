package astar

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Engine answers least-cost route queries over an implicit graph and memoizes
// found routes until Invalidate is called.
//
// An Engine owns its cache exclusively and performs no locking.
type Engine[N comparable] struct {
	adj       Adjacency[N]
	heuristic Heuristic[N]
	weight    Weight[N]
	onExpand  func(N)

	cache   *pathCache[N]
	logger  *slog.Logger
	metrics instruments
	stats   Stats
}

// New builds an Engine from the three graph callbacks.
//
// Validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. heuristic must be non-nil (ErrNilHeuristic).
//  3. weight must be non-nil (ErrNilWeight).
//  4. options must be valid (ErrOptionViolation).
func New[N comparable](adj Adjacency[N], heuristic Heuristic[N], weight Weight[N], opts ...Option) (*Engine[N], error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}
	if weight == nil {
		return nil, ErrNilWeight
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	onExpand := func(N) {}
	if cfg.onExpand != nil {
		fn, ok := cfg.onExpand.(func(N))
		if !ok {
			return nil, fmt.Errorf("%w: OnExpand hook has type %T, want func(%T)", ErrOptionViolation, cfg.onExpand, *new(N))
		}
		onExpand = fn
	}

	return &Engine[N]{
		adj:       adj,
		heuristic: heuristic,
		weight:    weight,
		onExpand:  onExpand,
		cache:     newPathCache[N](cfg.MaxEntries),
		logger:    cfg.Logger,
		metrics:   newInstruments(cfg.MeterProvider),
	}, nil
}

// FindPath returns the least-cost route from source to goal, excluding source
// and including goal. Cached routes are returned without probing any callback.
//
// On a miss a single search runs; a found route is cached, a failure is not.
// The returned slice is a copy and may be modified by the caller.
//
// FindPath(x, x) returns an empty route and a nil error.
func (e *Engine[N]) FindPath(source, goal N) ([]N, error) {
	if source == goal {
		return []N{}, nil
	}

	ctx := context.Background()
	key := pathKey[N]{source: source, goal: goal}
	if path, ok := e.cache.get(key); ok {
		e.stats.Hits++
		e.metrics.hits.Add(ctx, 1)
		e.logger.Debug("astar: cache hit",
			slog.Any("source", source),
			slog.Any("goal", goal),
			slog.Int("hops", len(path)),
		)
		return slices.Clone(path), nil
	}

	e.stats.Misses++
	e.metrics.misses.Add(ctx, 1)
	e.logger.Debug("astar: cache miss", slog.Any("source", source), slog.Any("goal", goal))

	res, err := e.Search(source, goal)
	if err != nil {
		return nil, err
	}

	if evicted := e.cache.put(key, res.Path); evicted > 0 {
		e.stats.Evictions += evicted
		e.metrics.evictions.Add(ctx, int64(evicted))
	}
	e.stats.Entries = e.cache.len()

	return slices.Clone(res.Path), nil
}

// Search runs one uncached A* search from source to goal.
// It returns ErrNoPath (wrapped with both endpoints) when the goal is
// unreachable, and ErrNegativeWeight when the weight callback misbehaves.
func (e *Engine[N]) Search(source, goal N) (Result[N], error) {
	started := time.Now()
	r := newRunner(e, source, goal)
	res, err := r.run()

	e.stats.Searches++
	e.stats.Expanded += res.Expanded
	if err != nil {
		e.stats.Failures++
	}
	e.metrics.recordSearch(context.Background(), started, res.Expanded, err != nil)

	if err != nil {
		e.logger.Debug("astar: search failed",
			slog.Any("source", source),
			slog.Any("goal", goal),
			slog.Int("expanded", res.Expanded),
			slog.String("error", err.Error()),
		)
		return res, err
	}
	e.logger.Debug("astar: path found",
		slog.Any("source", source),
		slog.Any("goal", goal),
		slog.Int("hops", len(res.Path)),
		slog.Float64("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
	)

	return res, nil
}

// Invalidate clears the whole cache. It must be called after any change to
// adjacency, weights or traversability of the graph.
func (e *Engine[N]) Invalidate() {
	dropped := e.cache.len()
	e.cache.clear()
	e.stats.Entries = 0
	e.logger.Debug("astar: cache invalidated", slog.Int("dropped", dropped))
}

// Cached reports whether a route for (source, goal) is currently cached.
func (e *Engine[N]) Cached(source, goal N) bool {
	return e.cache.contains(pathKey[N]{source: source, goal: goal})
}

// Stats returns a snapshot of the engine counters.
func (e *Engine[N]) Stats() Stats {
	s := e.stats
	s.Entries = e.cache.len()

	return s
}
