// Package cli provides the interactive menu and plain-terminal presentation
// for the strainfib application.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/format"
	"github.com/plantmath/strainfib/internal/logging"
	"github.com/plantmath/strainfib/internal/orchestration"
	"github.com/plantmath/strainfib/internal/strain"
	"github.com/plantmath/strainfib/internal/ui"
)

// MenuConfig holds configuration for the interactive menu session.
type MenuConfig struct {
	// Strain is the profile used by the single-computation demonstration.
	Strain strain.Strain
	// Timeout is the maximum duration for each computation.
	Timeout time.Duration
	// Terms is the default number of terms for the sequence demonstrations.
	Terms int
	// Quiet suppresses the spinner during the concurrent demonstration.
	Quiet bool
}

// Menu represents an interactive strain-Fibonacci session. Input and output
// are injectable so scripted sessions can drive the menu in tests.
type Menu struct {
	config MenuConfig
	log    logging.Logger
	in     io.Reader
	out    io.Writer
}

// NewMenu creates a new interactive menu.
//
// Parameters:
//   - config: Menu configuration.
//   - log: Structured logger for session events.
//
// Returns:
//   - *Menu: A new menu bound to stdin/stdout.
func NewMenu(config MenuConfig, log logging.Logger) *Menu {
	if config.Terms <= 0 {
		config.Terms = 10
	}
	return &Menu{
		config: config,
		log:    log,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (m *Menu) SetInput(in io.Reader) {
	m.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (m *Menu) SetOutput(out io.Writer) {
	m.out = out
}

// Run begins the interactive session. It continuously displays the menu and
// processes choices until the user exits or EOF is reached.
func (m *Menu) Run(ctx context.Context) {
	m.printBanner()

	reader := bufio.NewReader(m.in)

	for {
		m.printMenu()
		fmt.Fprint(m.out, ui.ColorGreen()+"Enter choice (1-7): "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(m.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		choice := strings.TrimSpace(input)
		if choice == "" {
			continue
		}

		if !m.dispatch(ctx, reader, choice) {
			return
		}

		fmt.Fprintln(m.out, "\nPress Enter to continue...")
		if _, err := reader.ReadString('\n'); err != nil {
			return
		}
	}
}

// printBanner displays the session welcome banner.
func (m *Menu) printBanner() {
	fmt.Fprintf(m.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(m.out, "%s║%s     %s🌿 Strain-Enhanced Fibonacci Laboratory%s              %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(m.out, "%s╚══════════════════════════════════════════════════════════╝%s\n", ui.ColorCyan(), ui.ColorReset())
}

// printMenu displays the numbered choices.
func (m *Menu) printMenu() {
	fmt.Fprintf(m.out, "\n%sStrain Fibonacci Menu:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintln(m.out, "===============================")
	fmt.Fprintln(m.out, "1. Strain-Enhanced Single Fibonacci")
	fmt.Fprintln(m.out, "2. Generate Fibonacci Sequence")
	fmt.Fprintln(m.out, "3. Concurrent Range Computation")
	fmt.Fprintln(m.out, "4. Golden Ratio Convergence Analysis")
	fmt.Fprintln(m.out, "5. Strain Performance Comparison")
	fmt.Fprintln(m.out, "6. Growers' Concurrency Wisdom")
	fmt.Fprintln(m.out, "7. Exit to Terminal")
	fmt.Fprintln(m.out)
}

// dispatch executes a single menu choice. Returns false when the session
// should end.
func (m *Menu) dispatch(ctx context.Context, reader *bufio.Reader, choice string) bool {
	switch choice {
	case "1":
		m.demoSingle(reader)
	case "2":
		m.demoSequence(reader)
	case "3":
		m.demoRange(ctx)
	case "4":
		m.demoGoldenRatio()
	case "5":
		m.demoComparison(ctx)
	case "6":
		m.showWisdom()
	case "7":
		fmt.Fprintln(m.out, "Shutting down the grow room...")
		fmt.Fprintln(m.out, "May the scheduler keep your goroutines green! 🌿")
		return false
	default:
		fmt.Fprintf(m.out, "%sInvalid choice - please enter 1-7%s\n", ui.ColorRed(), ui.ColorReset())
	}
	return true
}

// demoSingle prompts for an index and computes it with the configured strain.
func (m *Menu) demoSingle(reader *bufio.Reader) {
	fmt.Fprintf(m.out, "\n%s🌿 Strain-Enhanced Single Fibonacci Calculation 🌿%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(m.out, "Enter Fibonacci position (0-%d): ", fibonacci.MaxSafeIndex)

	n, ok := m.readUint(reader)
	if !ok {
		return
	}

	engine := fibonacci.New(m.config.Strain, fibonacci.WithLogger(m.log))
	start := time.Now()
	result, err := engine.Compute(n)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(m.out, "%sCalculation error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(m.out, "\nFibonacci(%d) = %s\n", n, FormatValue(result))
	fmt.Fprintf(m.out, "Calculated with %s%s%s strain enhancement (×%g) in %s\n",
		ui.ColorCyan(), engine.Label(), ui.ColorReset(), engine.Multiplier(), format.Duration(duration))
}

// demoSequence walks the bounded iterator for a user-chosen number of terms.
func (m *Menu) demoSequence(reader *bufio.Reader) {
	fmt.Fprintf(m.out, "\n%s🌱 Bounded Iterator Fibonacci Sequence 🌱%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(m.out, "Enter number of terms (1-%d): ", SequenceDisplayLimit)

	n, ok := m.readUint(reader)
	if !ok {
		return
	}
	terms := int(n)
	if terms < 1 {
		terms = 1
	}
	if terms > SequenceDisplayLimit {
		fmt.Fprintf(m.out, "Limiting to %d terms for display purposes\n", SequenceDisplayLimit)
		terms = SequenceDisplayLimit
	}

	fmt.Fprintf(m.out, "\n%s strain iterator:\n", strain.Sativa)
	it := fibonacci.NewBoundedIterator(strain.Sativa)
	for i, value := range it.Collect(terms) {
		fmt.Fprintf(m.out, "F(%2d) = %20s\n", i, value)
	}
}

// demoRange evaluates a fixed index window concurrently and reports elapsed
// wall time, with a spinner while the chunks run.
func (m *Menu) demoRange(ctx context.Context) {
	fmt.Fprintf(m.out, "\n%s⚡ Concurrent Range Computation ⚡%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(m.out, "Computing Fibonacci numbers %d-%d concurrently...\n", RangeDemoStart, RangeDemoEnd-1)

	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	var spin Spinner
	if !m.config.Quiet {
		spin = newSpinner()
		spin.UpdateSuffix(" dispatching chunks...")
		spin.Start()
	}

	engine := fibonacci.New(strain.Hybrid, fibonacci.WithLogger(m.log))
	start := time.Now()
	results, err := engine.ComputeRange(ctx, RangeDemoStart, RangeDemoEnd)
	duration := time.Since(start)

	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintf(m.out, "%sConcurrent computation error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	indices := make([]uint64, 0, len(results))
	for n := range results {
		indices = append(indices, n)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	fmt.Fprintf(m.out, "\nConcurrent Computation Results:\n")
	for _, n := range indices {
		fmt.Fprintf(m.out, "F(%2d) = %25s\n", n, results[n])
	}
	fmt.Fprintf(m.out, "\nConcurrent computation completed in %s\n", format.Duration(duration))
}

// demoGoldenRatio analyzes consecutive-term ratios against phi.
func (m *Menu) demoGoldenRatio() {
	fmt.Fprintf(m.out, "\n%s📐 Golden Ratio Convergence Analysis 📐%s\n", ui.ColorBold(), ui.ColorReset())

	engine := fibonacci.New(strain.Indica, fibonacci.WithLogger(m.log))
	ratios, err := engine.GoldenRatioRatios(GoldenRatioTerms)
	if err != nil {
		fmt.Fprintf(m.out, "%sAnalysis error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	goldenRatio := (1.0 + math.Sqrt(5.0)) / 2.0
	fmt.Fprintf(m.out, "Theoretical Golden Ratio: %.12f\n", goldenRatio)
	fmt.Fprintf(m.out, "\n%s strain convergence (×%g):\n", engine.Label(), engine.Multiplier())

	for i, ratio := range ratios {
		errAbs := math.Abs(ratio - goldenRatio)
		fmt.Fprintf(m.out, "ratio %2d = %.12f (error: %.2e)\n", i, ratio, errAbs)
	}

	fmt.Fprintln(m.out, "\nThe golden ratio governs natural growth patterns,")
	fmt.Fprintln(m.out, "from leaf arrangements to spiral galaxies.")
}

// demoComparison benchmarks the same index across every built-in strain.
func (m *Menu) demoComparison(ctx context.Context) {
	fmt.Fprintf(m.out, "\n%s🌿 Strain Performance Comparison 🌿%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(m.out, "Benchmarking Fibonacci(%d) across all strains...\n", orchestration.DefaultComparisonIndex)

	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	results := orchestration.CompareStrains(ctx, orchestration.DefaultComparisonIndex,
		strain.All(), orchestration.NullProgressReporter{}, m.out)
	orchestration.AnalyzeComparison(results, NewPresenter(), m.out)
}

// readUint reads and parses one unsigned integer line.
func (m *Menu) readUint(reader *bufio.Reader) (uint64, bool) {
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(m.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
	if err != nil {
		fmt.Fprintf(m.out, "%sInvalid value: %s%s\n", ui.ColorRed(), strings.TrimSpace(input), ui.ColorReset())
		return 0, false
	}
	return n, true
}

// Demonstration parameters. The range window mirrors the classic classroom
// exercise of two chunk spans plus a remainder.
const (
	RangeDemoStart       uint64 = 20
	RangeDemoEnd         uint64 = 41
	GoldenRatioTerms            = 20
	SequenceDisplayLimit        = 30
)
