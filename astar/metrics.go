package astar

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instrumentationName scopes the meter of every Engine.
const instrumentationName = "github.com/katalvlaran/lvlath/astar"

// instruments bundles the metric instruments of one Engine.
type instruments struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	evictions metric.Int64Counter
	expanded  metric.Int64Counter
	failures  metric.Int64Counter
	duration  metric.Float64Histogram
}

// newInstruments creates the instruments on mp. Any instrument the provider
// refuses is replaced by its no-op counterpart so recording never fails.
func newInstruments(mp metric.MeterProvider) instruments {
	meter := mp.Meter(instrumentationName)
	fallback := noop.NewMeterProvider().Meter(instrumentationName)

	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}
		return c
	}

	duration, err := meter.Float64Histogram(
		"astar_search_duration_seconds",
		metric.WithDescription("Duration of A* searches"),
		metric.WithUnit("s"),
	)
	if err != nil {
		duration, _ = fallback.Float64Histogram("astar_search_duration_seconds")
	}

	return instruments{
		hits:      counter("astar_cache_hits_total", "Total number of path cache hits"),
		misses:    counter("astar_cache_misses_total", "Total number of path cache misses"),
		evictions: counter("astar_cache_evictions_total", "Total number of path cache evictions"),
		expanded:  counter("astar_expanded_nodes_total", "Total number of expanded nodes"),
		failures:  counter("astar_search_failures_total", "Total number of searches that found no path"),
		duration:  duration,
	}
}

// recordSearch records the outcome of one search.
func (in instruments) recordSearch(ctx context.Context, started time.Time, expanded int, failed bool) {
	in.duration.Record(ctx, time.Since(started).Seconds())
	in.expanded.Add(ctx, int64(expanded))
	if failed {
		in.failures.Add(ctx, 1)
	}
}
