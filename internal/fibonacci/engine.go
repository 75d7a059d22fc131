// Package fibonacci implements the memoized, overflow-checked distorted
// Fibonacci engine. Every non-base term is scaled by a strain multiplier, so
// for multipliers other than 1.0 the engine does not produce the mathematical
// Fibonacci sequence but the strain-specific recurrence
//
//	a(n) = floor(multiplier * (a(n-1) + a(n-2))),  a(0)=0, a(1)=1
//
// with saturating addition on the pre-multiplier sum.
package fibonacci

import (
	"context"
	"math/big"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/plantmath/strainfib/internal/errors"
	"github.com/plantmath/strainfib/internal/logging"
	"github.com/plantmath/strainfib/internal/metrics"
	"github.com/plantmath/strainfib/internal/parallel"
	"github.com/plantmath/strainfib/internal/strain"
)

// Engine owns a memoization table of distorted Fibonacci terms and computes
// single values, sequences, golden-ratio ratios and concurrent range
// evaluations. The cache is shared across concurrent callers and grows
// monotonically: entries are never removed or overwritten with a different
// value (a duplicate computation under contention rewrites the identical
// value, since the recurrence is pure).
type Engine struct {
	mu         sync.Mutex
	cache      map[uint64]*big.Int
	multiplier float64
	label      string

	log     logging.Logger
	metrics *metrics.EngineMetrics
	tracer  trace.Tracer
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithLogger sets the structured logger used by the engine.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine parameterized by a built-in strain profile.
//
// Parameters:
//   - s: The strain providing the multiplier and display label.
//   - opts: Optional engine configuration.
//
// Returns:
//   - *Engine: A new engine with its cache seeded at {0:0, 1:1}.
func New(s strain.Strain, opts ...Option) *Engine {
	return NewDistorted(s.Multiplier(), s.String(), opts...)
}

// NewDistorted creates an engine with an explicit multiplier and label.
// The label has no behavioral effect; it tags log entries and metrics.
//
// Parameters:
//   - multiplier: The distortion factor applied to every computed term.
//   - label: The display name of the engine.
//   - opts: Optional engine configuration.
//
// Returns:
//   - *Engine: A new engine with its cache seeded at {0:0, 1:1}.
func NewDistorted(multiplier float64, label string, opts ...Option) *Engine {
	e := &Engine{
		cache: map[uint64]*big.Int{
			0: new(big.Int),
			1: big.NewInt(1),
		},
		multiplier: multiplier,
		label:      label,
		log:        logging.Nop{},
		metrics:    metrics.ForEngine(label),
		tracer:     otel.Tracer("github.com/plantmath/strainfib/internal/fibonacci"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Label returns the display name of the engine.
func (e *Engine) Label() string { return e.label }

// Multiplier returns the distortion factor of the engine.
func (e *Engine) Multiplier() float64 { return e.multiplier }

// CacheSize returns the current number of memoized terms.
func (e *Engine) CacheSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cache)
}

// Compute returns the n-th distorted Fibonacci term.
//
// The computation is a top-down memoized recursion. The mutex is held only for
// the cache read and the cache write, never across the recursive calls, so two
// goroutines may both miss the cache for the same index and both compute it.
// That duplicate work is harmless: the recurrence is pure and both writers
// store the same value.
//
// Parameters:
//   - n: The term index.
//
// Returns:
//   - *big.Int: A caller-owned copy of the term.
//   - error: An OverflowRiskError if n exceeds MaxSafeIndex.
func (e *Engine) Compute(n uint64) (*big.Int, error) {
	start := time.Now()
	v, err := e.compute(n)
	e.metrics.ObserveCompute(time.Since(start).Seconds())
	return v, err
}

// compute is the recursive core of Compute. It returns defensive copies so
// callers can never alias the memo table.
func (e *Engine) compute(n uint64) (*big.Int, error) {
	if n > MaxSafeIndex {
		return nil, apperrors.NewOverflowRiskError(n, MaxSafeIndex)
	}

	e.mu.Lock()
	if v, ok := e.cache[n]; ok {
		result := new(big.Int).Set(v)
		e.mu.Unlock()
		e.metrics.CacheHit()
		return result, nil
	}
	e.mu.Unlock()
	e.metrics.CacheMiss()

	var result *big.Int
	if n <= 1 {
		result = new(big.Int).SetUint64(n)
	} else {
		a, err := e.compute(n - 1)
		if err != nil {
			return nil, err
		}
		b, err := e.compute(n - 2)
		if err != nil {
			return nil, err
		}
		result = distort(addSaturating(a, b), e.multiplier)
	}

	e.mu.Lock()
	e.cache[n] = result
	e.mu.Unlock()
	e.metrics.Computed()

	return new(big.Int).Set(result), nil
}

// Sequence returns the ordered terms [Compute(0), ..., Compute(count-1)].
// The first error encountered aborts the generation; for count > MaxSafeIndex+1
// that is the OverflowRiskError of the final indices. A count of zero or less
// yields an empty sequence.
//
// Parameters:
//   - count: The number of terms to generate.
//
// Returns:
//   - []*big.Int: Exactly count terms on success.
//   - error: The first computation error.
func (e *Engine) Sequence(count int) ([]*big.Int, error) {
	if count <= 0 {
		return nil, nil
	}
	sequence := make([]*big.Int, 0, count)
	for i := 0; i < count; i++ {
		v, err := e.Compute(uint64(i))
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, v)
	}
	return sequence, nil
}

// ComputeRange evaluates every index in the half-open range [start, end)
// concurrently and returns an index→value map.
//
// The range is partitioned into contiguous chunks of at most ChunkSize
// indices, one goroutine per chunk with no pool cap, each inserting its
// successful results into the shared map under exclusive access. Per-index
// computation errors are silently dropped (the index is simply absent from
// the result); an abnormal worker termination fails the whole operation with
// a WorkerFailureError and discards the partial results. The call blocks
// until every worker finishes; the context is used for tracing only, there is
// no cancellation or timeout support.
//
// Parameters:
//   - ctx: The context, attached to the trace span.
//   - start: The inclusive lower index.
//   - end: The exclusive upper index.
//
// Returns:
//   - map[uint64]*big.Int: The complete result map, order-independent.
//   - error: An InvalidRangeError if end <= start, or a WorkerFailureError.
func (e *Engine) ComputeRange(ctx context.Context, start, end uint64) (map[uint64]*big.Int, error) {
	if end <= start {
		return nil, apperrors.NewInvalidRangeError(start, end)
	}

	_, span := e.tracer.Start(ctx, "Engine.ComputeRange", trace.WithAttributes(
		attribute.Int64("range.start", int64(start)),
		attribute.Int64("range.end", int64(end)),
		attribute.String("engine.label", e.label),
	))
	defer span.End()

	results := make(map[uint64]*big.Int, end-start)
	var resultsMu sync.Mutex
	var wg sync.WaitGroup
	var ec parallel.ErrorCollector

	chunks := 0
	for chunkStart := start; chunkStart < end; {
		// The addition may wrap near the uint64 ceiling; the clamp below
		// also keeps the cursor advance from wrapping past end.
		chunkEnd := chunkStart + ChunkSize
		if chunkEnd > end || chunkEnd < chunkStart {
			chunkEnd = end
		}
		chunks++
		e.metrics.ChunkSpawned()

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					ec.SetError(apperrors.NewWorkerFailureError(r))
				}
			}()
			for n := lo; n < hi; n++ {
				v, err := e.Compute(n)
				if err != nil {
					// Domain errors leave a hole in the result map; only
					// worker panics fail the whole range.
					continue
				}
				resultsMu.Lock()
				results[n] = v
				resultsMu.Unlock()
			}
		}(chunkStart, chunkEnd)
		chunkStart = chunkEnd
	}

	wg.Wait()

	if err := ec.Err(); err != nil {
		span.RecordError(err)
		e.log.Error("range computation failed", err,
			logging.Uint64("start", start),
			logging.Uint64("end", end),
		)
		return nil, err
	}

	e.log.Debug("range computed",
		logging.Uint64("start", start),
		logging.Uint64("end", end),
		logging.Int("chunks", chunks),
		logging.Int("results", len(results)),
	)
	return results, nil
}

// GoldenRatioRatios generates the first terms of the sequence and returns the
// consecutive ratios value[i]/value[i-1] for i in [1, terms). Pairs whose
// denominator is zero are omitted rather than reported as errors; a dampening
// multiplier can therefore yield far fewer ratios than terms-1.
//
// Parameters:
//   - terms: The number of sequence terms to generate.
//
// Returns:
//   - []float64: The consecutive ratios, zero-denominator pairs skipped.
//   - error: The first sequence generation error.
func (e *Engine) GoldenRatioRatios(terms int) ([]float64, error) {
	sequence, err := e.Sequence(terms)
	if err != nil {
		return nil, err
	}

	ratios := make([]float64, 0, len(sequence))
	for i := 1; i < len(sequence); i++ {
		if sequence[i-1].Sign() <= 0 {
			continue
		}
		prev, _ := new(big.Float).SetInt(sequence[i-1]).Float64()
		cur, _ := new(big.Float).SetInt(sequence[i]).Float64()
		ratios = append(ratios, cur/prev)
	}
	return ratios, nil
}

// BenchmarkSample pairs an index with the wall-clock duration of a single
// Compute call for that index.
type BenchmarkSample struct {
	// N is the sampled index.
	N uint64
	// Elapsed is the measured duration of the Compute call.
	Elapsed time.Duration
}

// Benchmark measures Compute for n = 1, 1+BenchmarkStep, ... up to maxN and
// returns one sample per measured index. It is purely observational: warm
// cache entries make later samples faster, which is the behavior being
// demonstrated.
//
// Parameters:
//   - maxN: The inclusive upper bound of the sampled indices.
//
// Returns:
//   - []BenchmarkSample: One sample per measured index.
//   - error: The first computation error.
func (e *Engine) Benchmark(maxN uint64) ([]BenchmarkSample, error) {
	var samples []BenchmarkSample
	for n := uint64(1); n <= maxN; n += BenchmarkStep {
		start := time.Now()
		if _, err := e.Compute(n); err != nil {
			return nil, err
		}
		samples = append(samples, BenchmarkSample{N: n, Elapsed: time.Since(start)})
	}
	return samples, nil
}
