package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Engine Bounds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxSafeIndex is the largest Fibonacci index whose undistorted value fits
	// in a 128-bit unsigned integer: F(186) < 2^128 <= F(187). The bound is
	// checked before computation as a conservative static guard; it is not a
	// dynamic overflow detector, and it is applied regardless of the
	// multiplier (a dampening multiplier does not widen the bound).
	MaxSafeIndex = 186

	// ChunkSize is the maximum number of indices handled by a single worker
	// goroutine during a range computation. Ranges are partitioned into
	// contiguous chunks of at most this many indices, one goroutine per chunk,
	// with no cap on the number of concurrent workers.
	ChunkSize = 10

	// MaxIteratorTerms bounds the number of elements a BoundedIterator
	// produces. Together with the magnitude bound it guards against unbounded
	// growth when the multiplier exceeds 1.
	MaxIteratorTerms = 100

	// BenchmarkStep is the index stride between benchmark samples.
	BenchmarkStep = 5
)
