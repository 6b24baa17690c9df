package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// collect returns int64 sums by instrument name and the total histogram count.
func collect(t *testing.T, reader *sdkmetric.ManualReader) (map[string]int64, uint64) {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]int64)
	var observations uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					observations += dp.Count
				}
			}
		}
	}

	return sums, observations
}

func TestMetrics_RecordedOnProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	gg, err := gridgraph.From2D([][]int{
		{1, 1, 1, 0, 1},
		{1, 1, 1, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)
	eng, err := astar.New(gg.Neighbors, gridgraph.Manhattan, gridgraph.Manhattan,
		astar.WithMeterProvider(mp), astar.WithMaxEntries(1), quiet())
	require.NoError(t, err)

	origin := gridgraph.Point{}
	_, err = eng.FindPath(origin, gridgraph.Point{X: 2, Y: 1})
	require.NoError(t, err)
	_, err = eng.FindPath(origin, gridgraph.Point{X: 2, Y: 1})
	require.NoError(t, err)
	_, err = eng.FindPath(origin, gridgraph.Point{X: 2, Y: 0})
	require.NoError(t, err)
	_, err = eng.FindPath(origin, gridgraph.Point{X: 4, Y: 0})
	require.ErrorIs(t, err, astar.ErrNoPath)

	sums, observations := collect(t, reader)
	st := eng.Stats()
	assert.Equal(t, int64(1), sums["astar_cache_hits_total"])
	assert.Equal(t, int64(3), sums["astar_cache_misses_total"])
	assert.Equal(t, int64(1), sums["astar_cache_evictions_total"])
	assert.Equal(t, int64(1), sums["astar_search_failures_total"])
	assert.Equal(t, int64(st.Expanded), sums["astar_expanded_nodes_total"])
	assert.Equal(t, uint64(3), observations, "one duration sample per search")
}

func TestMetrics_DefaultProviderIsSafe(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	eng, err := astar.New(gg.Neighbors, gridgraph.Manhattan, gridgraph.Manhattan,
		astar.WithMeterProvider(nil), quiet())
	require.NoError(t, err)

	path, err := eng.FindPath(gridgraph.Point{}, gridgraph.Point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Point{{X: 1}}, path)
}
