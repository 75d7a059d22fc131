package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineMetricsCounters(t *testing.T) {
	m := ForEngine("test-counters")

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.Computed()
	m.ChunkSpawned()
	m.ChunkSpawned()
	m.ChunkSpawned()

	assert.Equal(t, 2.0, testutil.ToFloat64(cacheHits.WithLabelValues("test-counters")))
	assert.Equal(t, 1.0, testutil.ToFloat64(cacheMisses.WithLabelValues("test-counters")))
	assert.Equal(t, 1.0, testutil.ToFloat64(computations.WithLabelValues("test-counters")))
	assert.Equal(t, 3.0, testutil.ToFloat64(rangeChunks.WithLabelValues("test-counters")))
}

func TestForEngineSharesCounters(t *testing.T) {
	a := ForEngine("test-shared")
	b := ForEngine("test-shared")

	a.CacheHit()
	b.CacheHit()

	assert.Equal(t, 2.0, testutil.ToFloat64(cacheHits.WithLabelValues("test-shared")))
}

func TestObserveComputeDoesNotPanic(t *testing.T) {
	m := ForEngine("test-histogram")
	m.ObserveCompute(0.000004)
	m.ObserveCompute(1.5)
}

func TestMemorySnapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	require.NotZero(t, snap.HeapAlloc, "a running test binary has a live heap")
	assert.NotZero(t, snap.HeapObjects)
}
