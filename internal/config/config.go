// Package config provides the configuration management for the strainfib
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	apperrors "github.com/plantmath/strainfib/internal/errors"
	"github.com/plantmath/strainfib/internal/strain"
)

const (
	// EnvPrefix is the prefix for all environment variables used by strainfib.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "STRAINFIB_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultStrain is the default distortion profile.
	DefaultStrain = "hybrid"
	// DefaultTimeout is the default computation timeout.
	DefaultTimeout = 2 * time.Minute
	// DefaultTerms is the default number of sequence terms to display.
	DefaultTerms = 30
	// DefaultBenchMax is the default upper bound for the benchmark sweep.
	DefaultBenchMax uint64 = 100
)

// Multiplier bounds accepted for a custom distortion profile. Values far
// above 1 saturate the 128-bit ceiling within a handful of terms, so the cap
// is generous rather than tight.
const (
	MinMultiplier = 0.01
	MaxMultiplier = 100.0
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the strain profile to the rendering of results.
type AppConfig struct {
	// Strain selects the distortion profile ("sativa", "indica", "hybrid").
	Strain string
	// Multiplier, when non-zero, overrides the strain's distortion factor
	// with a custom value.
	Multiplier float64
	// N is the Fibonacci index for single-computation mode.
	N uint64
	// ComputeSet records whether -n was given explicitly; index 0 is a valid
	// request, so presence cannot be inferred from the value.
	ComputeSet bool
	// Terms is the number of sequence terms displayed by the iterator and
	// golden-ratio demonstrations.
	Terms int
	// Timeout sets the maximum duration for a computation.
	Timeout time.Duration
	// Bench, if true, runs the timing sweep instead of the interactive menu.
	Bench bool
	// BenchMax is the exclusive upper bound of the benchmark sweep.
	BenchMax uint64
	// TUI, if true, starts the full-screen terminal interface.
	TUI bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
}

// EffectiveMultiplier resolves the distortion factor: a custom override wins,
// otherwise the strain profile's factor applies.
func (c AppConfig) EffectiveMultiplier() (float64, error) {
	if c.Multiplier != 0 {
		return c.Multiplier, nil
	}
	s, err := strain.Parse(c.Strain)
	if err != nil {
		return 0, err
	}
	return s.Multiplier(), nil
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableStrains: A slice listing the valid strain names.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableStrains []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Terms <= 0 {
		return apperrors.NewConfigError("term count must be strictly positive: %d", c.Terms)
	}
	if c.Multiplier != 0 {
		if math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
			return apperrors.NewConfigError("multiplier must be a finite number")
		}
		if c.Multiplier < MinMultiplier || c.Multiplier > MaxMultiplier {
			return apperrors.NewConfigError("multiplier %g outside accepted range [%g, %g]", c.Multiplier, MinMultiplier, MaxMultiplier)
		}
	}
	known := false
	for _, s := range availableStrains {
		if s == c.Strain {
			known = true
			break
		}
	}
	if !known {
		return apperrors.NewConfigError("unrecognized strain: '%s'. Valid strains are: [%s]", c.Strain, strings.Join(availableStrains, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// applies environment overrides, and validates the result.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableStrains: A slice of valid strain names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableStrains []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	strainHelp := fmt.Sprintf("Distortion profile to use: one of [%s].", strings.Join(availableStrains, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Strain, "strain", DefaultStrain, strainHelp)
	fs.StringVar(&config.Strain, "s", DefaultStrain, "Distortion profile (shorthand).")
	fs.Float64Var(&config.Multiplier, "multiplier", 0, "Custom distortion multiplier overriding the strain profile.")
	fs.Uint64Var(&config.N, "n", 0, "Compute a single index and exit instead of opening the menu.")
	fs.IntVar(&config.Terms, "terms", DefaultTerms, "Number of sequence terms for the iterator and ratio displays.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for a computation.")
	fs.BoolVar(&config.Bench, "bench", false, "Run the timing sweep and exit.")
	fs.Uint64Var(&config.BenchMax, "bench-max", DefaultBenchMax, "Exclusive upper bound of the benchmark sweep.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the full-screen terminal interface.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.ComputeSet = isFlagSet(fs, "n") || envSet("N")
	config.Strain = strings.ToLower(config.Strain)
	if err := config.Validate(availableStrains); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// setCustomUsage installs a usage message grouping the flags by concern.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintln(out, "A memoized Fibonacci engine with strain-themed distortion profiles.")
		fmt.Fprintln(out, "Without mode flags, an interactive menu is shown.")
		fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment variables (prefix %s) override unset flags:\n", EnvPrefix)
		fmt.Fprintln(out, "  STRAIN, MULTIPLIER, N, TERMS, TIMEOUT, BENCH, BENCH_MAX, TUI,")
		fmt.Fprintln(out, "  NO_COLOR, QUIET, VERBOSE")
	}
}
