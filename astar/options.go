package astar

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation from New.
type Option func(*Options)

// Options holds the tunables of an Engine.
type Options struct {
	// Logger receives debug records for cache hits, misses and search outcomes.
	Logger *slog.Logger

	// MeterProvider supplies the meter used for engine metrics.
	MeterProvider metric.MeterProvider

	// MaxEntries bounds the cache with LRU eviction. 0 means unbounded.
	MaxEntries int

	// onExpand holds a func(N) set by WithOnExpand; checked against N in New.
	onExpand any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//
//   - Logger: slog.Default()
//   - MeterProvider: the global otel provider
//   - MaxEntries: 0 (unbounded cache, entries live until Invalidate)
//   - no expansion hook.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.Default(),
		MeterProvider: otel.GetMeterProvider(),
		MaxEntries:    0,
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider. A nil provider is ignored.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// WithMaxEntries bounds the path cache to n pairs, evicting the least recently
// used pair first.
//
//	n > 0:  LRU bound of n pairs
//	n == 0: unbounded (default)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxEntries(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxEntries cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxEntries = n
	}
}

// WithOnExpand registers a hook called with each node as it is expanded.
// The node type must match the Engine's; a mismatch is reported by New.
func WithOnExpand[N comparable](fn func(node N)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}
