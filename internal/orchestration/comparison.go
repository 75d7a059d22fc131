package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/plantmath/strainfib/internal/errors"
	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/strain"
)

// DefaultComparisonIndex is the Fibonacci index evaluated by the standard
// strain comparison. It is low enough that all built-in profiles complete
// instantly while still producing visibly diverging values.
const DefaultComparisonIndex = 30

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// comparison goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// CompareStrains evaluates the same index on a fresh engine per strain,
// concurrently. It manages the lifecycle of the worker goroutines, collects
// their results, and coordinates the display of progress updates.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - n: The Fibonacci index to evaluate on every engine.
//   - strains: The strain profiles to compare.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []ComparisonResult: One entry per strain, in input order.
func CompareStrains(ctx context.Context, n uint64, strains []strain.Strain, reporter ProgressReporter, out io.Writer) []ComparisonResult {
	g, _ := errgroup.WithContext(ctx)
	results := make([]ComparisonResult, len(strains))
	updates := make(chan ProgressUpdate, len(strains)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, len(strains), out)

	for i, s := range strains {
		idx, profile := i, s
		g.Go(func() error {
			engine := fibonacci.New(profile)
			startTime := time.Now()
			res, err := engine.Compute(n)
			results[idx] = ComparisonResult{
				Label:      engine.Label(),
				Multiplier: engine.Multiplier(),
				Result:     res,
				Duration:   time.Since(startTime),
				Err:        err,
			}
			updates <- ProgressUpdate{EngineIndex: idx, Label: engine.Label(), Fraction: 1.0}
			return nil
		})
	}

	g.Wait()
	close(updates)
	displayWg.Wait()

	return results
}

// AnalyzeComparison sorts results by execution time (failures last) and
// renders the comparison table through the presenter. Unlike an
// algorithm-equivalence check, diverging values across strains are expected:
// each multiplier defines its own sequence.
//
// Returns an exit code: success when at least one engine completed, a generic
// failure otherwise.
func AnalyzeComparison(results []ComparisonResult, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	successCount := 0
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strain engine could complete the computation: %v\n", firstError)
		return apperrors.ExitErrorGeneric
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. %d of %d strain engines completed.\n", successCount, len(results))
	return apperrors.ExitSuccess
}
