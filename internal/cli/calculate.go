package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/plantmath/strainfib/internal/config"
	apperrors "github.com/plantmath/strainfib/internal/errors"
	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/metrics"
	"github.com/plantmath/strainfib/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the target index, strain profile, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(%d)%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.N, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Strain profile: %s%s%s.\n", ui.ColorCyan(), cfg.Strain, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// RunSingleComputation evaluates one index on the given engine and renders
// the outcome. This backs the -n flag.
//
// Returns an exit code suitable for os.Exit.
func RunSingleComputation(engine *fibonacci.Engine, n uint64, quiet bool, out io.Writer) int {
	start := time.Now()
	result, err := engine.Compute(n)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	DisplaySingleResult(out, engine.Label(), n, result, duration, quiet)
	return apperrors.ExitSuccess
}

// RunBenchmark performs the timing sweep on the given engine and renders the
// sample table. This backs the -bench flag.
//
// Returns an exit code suitable for os.Exit.
func RunBenchmark(engine *fibonacci.Engine, maxN uint64, out io.Writer) int {
	samples, err := engine.Benchmark(maxN)
	if err != nil {
		fmt.Fprintf(out, "%sBenchmark error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	DisplayBenchmark(out, engine.Label(), samples)
	snap := metrics.NewMemoryCollector().Snapshot()
	fmt.Fprintf(out, "Heap after sweep: %.2f MiB in %d objects (%d GC cycles).\n",
		float64(snap.HeapAlloc)/(1024*1024), snap.HeapObjects, snap.NumGC)
	return apperrors.ExitSuccess
}
