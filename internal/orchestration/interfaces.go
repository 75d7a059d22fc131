package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"
)

// ComparisonResult encapsulates the outcome of evaluating one strain engine.
// It serves as the shared domain type between orchestration and presentation
// layers.
type ComparisonResult struct {
	// Label identifies the strain profile (e.g., "Sativa").
	Label string
	// Multiplier is the distortion factor the engine applied.
	Multiplier float64
	// Result is the computed value. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the computation.
	Duration time.Duration
	// Err contains any error that occurred during the computation.
	Err error
}

// ProgressUpdate is emitted by a comparison worker when its engine finishes.
type ProgressUpdate struct {
	// EngineIndex is the position of the engine in the comparison set.
	EngineIndex int
	// Label identifies the strain profile being evaluated.
	Label string
	// Fraction is the completion ratio, 1.0 on the final update.
	Fraction float64
}

// ProgressReporter defines the interface for displaying comparison progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinners, TUI
// views) while the orchestration layer focuses on coordinating the engines.
type ProgressReporter interface {
	// DisplayProgress consumes progress updates from the channel. It should
	// be called in a separate goroutine and runs until the channel is closed.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, numEngines int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan ProgressUpdate, numEngines int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, numEngines int, out io.Writer) {
	f(wg, updates, numEngines, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the update channel without displaying anything. Useful for quiet
// mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
	}
}

// ResultPresenter defines the interface for presenting comparison results,
// allowing different output formats (plain CLI, TUI) without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-strain summary table.
	PresentComparisonTable(results []ComparisonResult, out io.Writer)
}
