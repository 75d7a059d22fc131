// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/format"
	"github.com/plantmath/strainfib/internal/orchestration"
	"github.com/plantmath/strainfib/internal/ui"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 50
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 18
)

// FormatValue renders a computed value, truncating the middle of very long
// numbers. Every 128-bit value fits in 39 digits, so truncation only triggers
// for values approaching the saturation ceiling.
func FormatValue(v *big.Int) string {
	s := v.String()
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// DisplaySingleResult renders a single computation in the plain-output modes
// (-n flag and quiet scripting).
//
// Parameters:
//   - out: The output writer.
//   - label: The strain or profile label.
//   - n: The computed index.
//   - result: The computed value.
//   - duration: The computation duration.
//   - quiet: When true, print only the bare value.
func DisplaySingleResult(out io.Writer, label string, n uint64, result *big.Int, duration time.Duration, quiet bool) {
	if quiet {
		fmt.Fprintln(out, result.String())
		return
	}
	fmt.Fprintf(out, "Fibonacci(%s%d%s) = %s%s%s\n",
		ui.ColorMagenta(), n, ui.ColorReset(),
		ui.ColorGreen(), FormatValue(result), ui.ColorReset())
	fmt.Fprintf(out, "  Strain: %s%s%s\n", ui.ColorCyan(), label, ui.ColorReset())
	fmt.Fprintf(out, "  Time:   %s%s%s\n", ui.ColorCyan(), format.Duration(duration), ui.ColorReset())
}

// DisplayBenchmark renders a timing sweep as an aligned table.
func DisplayBenchmark(out io.Writer, label string, samples []fibonacci.BenchmarkSample) {
	fmt.Fprintf(out, "\n%sTiming sweep - %s strain:%s\n", ui.ColorBold(), label, ui.ColorReset())
	fmt.Fprintf(out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	for _, s := range samples {
		fmt.Fprintf(out, "  n = %s%3d%s   %s%12s%s\n",
			ui.ColorYellow(), s.N, ui.ColorReset(),
			ui.ColorCyan(), format.Duration(s.Elapsed), ui.ColorReset())
	}
	fmt.Fprintf(out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
}

// Presenter renders comparison results for the plain terminal. It implements
// orchestration.ResultPresenter.
type Presenter struct{}

// NewPresenter creates a plain-terminal presenter.
func NewPresenter() Presenter {
	return Presenter{}
}

// PresentComparisonTable displays the per-strain summary table.
func (Presenter) PresentComparisonTable(results []orchestration.ComparisonResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "  %s%-8s%s: %sError - %v%s\n",
				ui.ColorYellow(), res.Label, ui.ColorReset(),
				ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		fmt.Fprintf(out, "  %s%-8s%s (×%g): %s%12s%s   %s\n",
			ui.ColorYellow(), res.Label, ui.ColorReset(), res.Multiplier,
			ui.ColorCyan(), format.Duration(res.Duration), ui.ColorReset(),
			FormatValue(res.Result))
	}
	fmt.Fprintf(out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
}
