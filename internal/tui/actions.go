package tui

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plantmath/strainfib/internal/cli"
	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/format"
	"github.com/plantmath/strainfib/internal/orchestration"
	"github.com/plantmath/strainfib/internal/strain"
)

// menuItems are the actions offered by the TUI, in display order.
var menuItems = []string{
	"Strain-Enhanced Single Fibonacci",
	"Generate Fibonacci Sequence",
	"Concurrent Range Computation",
	"Golden Ratio Convergence Analysis",
	"Strain Performance Comparison",
	"Growers' Concurrency Wisdom",
	"Exit to Terminal",
}

// Menu action indices.
const (
	actionSingle = iota
	actionSequence
	actionRange
	actionGoldenRatio
	actionComparison
	actionWisdom
	actionExit
)

// actionDoneMsg carries the rendered output of a completed action.
type actionDoneMsg struct {
	output string
	isErr  bool
}

// runSingleCmd computes one index with the session strain.
func runSingleCmd(s strain.Strain, n uint64) tea.Cmd {
	return func() tea.Msg {
		engine := fibonacci.New(s)
		start := time.Now()
		result, err := engine.Compute(n)
		if err != nil {
			return actionDoneMsg{output: err.Error(), isErr: true}
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Fibonacci(%d) = %s\n", n, cli.FormatValue(result))
		fmt.Fprintf(&b, "Strain: %s (×%g)\n", engine.Label(), engine.Multiplier())
		fmt.Fprintf(&b, "Time:   %s\n", format.Duration(time.Since(start)))
		return actionDoneMsg{output: b.String()}
	}
}

// runSequenceCmd walks the bounded iterator for the requested term count.
func runSequenceCmd(terms int) tea.Cmd {
	return func() tea.Msg {
		if terms > cli.SequenceDisplayLimit {
			terms = cli.SequenceDisplayLimit
		}
		if terms < 1 {
			terms = 1
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s strain iterator (%d terms):\n\n", strain.Sativa, terms)
		it := fibonacci.NewBoundedIterator(strain.Sativa)
		for i, value := range it.Collect(terms) {
			fmt.Fprintf(&b, "F(%2d) = %20s\n", i, value)
		}
		return actionDoneMsg{output: b.String()}
	}
}

// runRangeCmd evaluates the demonstration window concurrently.
func runRangeCmd(ctx context.Context, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		engine := fibonacci.New(strain.Hybrid)
		start := time.Now()
		results, err := engine.ComputeRange(ctx, cli.RangeDemoStart, cli.RangeDemoEnd)
		if err != nil {
			return actionDoneMsg{output: err.Error(), isErr: true}
		}

		indices := make([]uint64, 0, len(results))
		for n := range results {
			indices = append(indices, n)
		}
		sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

		var b strings.Builder
		fmt.Fprintf(&b, "Indices %d-%d, chunks of %d:\n\n", cli.RangeDemoStart, cli.RangeDemoEnd-1, fibonacci.ChunkSize)
		for _, n := range indices {
			fmt.Fprintf(&b, "F(%2d) = %25s\n", n, results[n])
		}
		fmt.Fprintf(&b, "\nCompleted in %s\n", format.Duration(time.Since(start)))
		return actionDoneMsg{output: b.String()}
	}
}

// runGoldenRatioCmd analyzes consecutive-term ratios against phi.
func runGoldenRatioCmd() tea.Cmd {
	return func() tea.Msg {
		engine := fibonacci.New(strain.Indica)
		ratios, err := engine.GoldenRatioRatios(cli.GoldenRatioTerms)
		if err != nil {
			return actionDoneMsg{output: err.Error(), isErr: true}
		}

		goldenRatio := (1.0 + math.Sqrt(5.0)) / 2.0
		var b strings.Builder
		fmt.Fprintf(&b, "Theoretical Golden Ratio: %.12f\n", goldenRatio)
		fmt.Fprintf(&b, "%s strain convergence (×%g):\n\n", engine.Label(), engine.Multiplier())
		for i, ratio := range ratios {
			fmt.Fprintf(&b, "ratio %2d = %.12f (error: %.2e)\n", i, ratio, math.Abs(ratio-goldenRatio))
		}
		return actionDoneMsg{output: b.String()}
	}
}

// runComparisonCmd benchmarks the comparison index across every strain.
func runComparisonCmd(ctx context.Context, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		results := orchestration.CompareStrains(ctx, orchestration.DefaultComparisonIndex,
			strain.All(), orchestration.NullProgressReporter{}, io.Discard)

		var b strings.Builder
		fmt.Fprintf(&b, "Fibonacci(%d) across all strains:\n", orchestration.DefaultComparisonIndex)
		orchestration.AnalyzeComparison(results, plainPresenter{}, &b)
		return actionDoneMsg{output: b.String()}
	}
}

// wisdomText returns the educational notes shown by the wisdom action.
func wisdomText() string {
	var b strings.Builder
	b.WriteString("Goroutines fan out one chunk per ten indices.\n")
	b.WriteString("The memo table is locked around reads and writes only;\n")
	b.WriteString("the arithmetic itself runs unlocked.\n\n")
	b.WriteString("A multiplier above 1 races toward the 128-bit ceiling.\n")
	b.WriteString("A multiplier below 1 collapses the sequence to zero.\n")
	b.WriteString("Only the identity multiplier converges on the golden ratio.\n")
	return b.String()
}

// plainPresenter renders comparison rows without ANSI colors for the TUI
// output panel, which applies lipgloss styling on top.
type plainPresenter struct{}

func (plainPresenter) PresentComparisonTable(results []orchestration.ComparisonResult, out io.Writer) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "  %-8s: error - %v\n", res.Label, res.Err)
			continue
		}
		fmt.Fprintf(out, "  %-8s (×%g): %12s   %s\n",
			res.Label, res.Multiplier, format.Duration(res.Duration), cli.FormatValue(res.Result))
	}
}
