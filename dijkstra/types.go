package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilAdjacency indicates that a nil adjacency function was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency function is nil")

	// ErrNilWeight indicates that a nil weight function was passed.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – nodes whose distance would exceed this cost are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Invalid configuration is a programming error; fail at construction.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: +Inf (explore everything reachable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
