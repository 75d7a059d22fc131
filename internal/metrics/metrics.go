// Package metrics provides Prometheus instrumentation and runtime memory
// sampling for the distorted Fibonacci engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for engine-level observability. Labels carry the engine
// label (strain name) so concurrent engines remain distinguishable.
var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strainfib_cache_hits_total",
		Help: "Total number of memo cache hits",
	}, []string{"engine"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strainfib_cache_misses_total",
		Help: "Total number of memo cache misses",
	}, []string{"engine"})

	computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strainfib_computations_total",
		Help: "Total number of terms computed and inserted into the cache",
	}, []string{"engine"})

	rangeChunks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strainfib_range_chunks_total",
		Help: "Total number of chunk workers spawned by range computations",
	}, []string{"engine"})

	computeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "strainfib_compute_duration_seconds",
		Help:    "Wall-clock duration of single Compute calls",
		Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
	}, []string{"engine"})
)

// EngineMetrics records cache and computation events for one engine instance.
// The zero value is not usable; construct with ForEngine.
type EngineMetrics struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	computed prometheus.Counter
	chunks   prometheus.Counter
	duration prometheus.Observer
}

// ForEngine returns the metrics handle for the engine with the given label.
// Handles for the same label share the underlying counters.
//
// Parameters:
//   - label: The engine display label (typically the strain name).
//
// Returns:
//   - *EngineMetrics: The metrics handle.
func ForEngine(label string) *EngineMetrics {
	return &EngineMetrics{
		hits:     cacheHits.WithLabelValues(label),
		misses:   cacheMisses.WithLabelValues(label),
		computed: computations.WithLabelValues(label),
		chunks:   rangeChunks.WithLabelValues(label),
		duration: computeDuration.WithLabelValues(label),
	}
}

// CacheHit records a memo table hit.
func (m *EngineMetrics) CacheHit() { m.hits.Inc() }

// CacheMiss records a memo table miss.
func (m *EngineMetrics) CacheMiss() { m.misses.Inc() }

// Computed records one term computed and stored.
func (m *EngineMetrics) Computed() { m.computed.Inc() }

// ChunkSpawned records one chunk worker dispatched by a range computation.
func (m *EngineMetrics) ChunkSpawned() { m.chunks.Inc() }

// ObserveCompute records the wall-clock duration of a Compute call.
func (m *EngineMetrics) ObserveCompute(seconds float64) { m.duration.Observe(seconds) }
