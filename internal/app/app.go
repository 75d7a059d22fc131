package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/plantmath/strainfib/internal/cli"
	"github.com/plantmath/strainfib/internal/config"
	apperrors "github.com/plantmath/strainfib/internal/errors"
	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/logging"
	"github.com/plantmath/strainfib/internal/strain"
	"github.com/plantmath/strainfib/internal/tui"
	"github.com/plantmath/strainfib/internal/ui"
)

// Application represents the strainfib application instance.
type Application struct {
	Config    config.AppConfig
	Log       logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithAppLogger sets a custom logger for the application.
func WithAppLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "strainfib"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, strain.Names())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Log == nil {
		app.Log = logging.NewLogger(errWriter, "app")
	}
	return app, nil
}

// Run executes the application based on the configured mode: full-screen TUI,
// timing sweep, single computation, or the interactive menu.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	engine, err := a.buildEngine()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	if a.Config.Bench {
		return cli.RunBenchmark(engine, a.Config.BenchMax, out)
	}
	if a.Config.ComputeSet {
		if !a.Config.Quiet {
			cli.PrintExecutionConfig(a.Config, out)
		}
		return cli.RunSingleComputation(engine, a.Config.N, a.Config.Quiet, out)
	}

	return a.runMenu(ctx, out)
}

// buildEngine constructs the strain engine from the configuration. A custom
// multiplier produces a custom-labeled engine; otherwise the strain profile
// is used directly.
func (a *Application) buildEngine() (*fibonacci.Engine, error) {
	if a.Config.Multiplier != 0 {
		label := fmt.Sprintf("Custom ×%g", a.Config.Multiplier)
		return fibonacci.NewDistorted(a.Config.Multiplier, label, fibonacci.WithLogger(a.Log)), nil
	}
	s, err := strain.Parse(a.Config.Strain)
	if err != nil {
		return nil, err
	}
	return fibonacci.New(s, fibonacci.WithLogger(a.Log)), nil
}

// runTUI launches the full-screen terminal interface.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	s, err := strain.Parse(a.Config.Strain)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return tui.Run(ctx, s, a.Config, Version)
}

// runMenu starts the interactive text menu, the default mode.
func (a *Application) runMenu(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	s, err := strain.Parse(a.Config.Strain)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	menu := cli.NewMenu(cli.MenuConfig{
		Strain:  s,
		Timeout: a.Config.Timeout,
		Terms:   a.Config.Terms,
		Quiet:   a.Config.Quiet,
	}, a.Log)
	menu.SetOutput(out)
	menu.Run(ctx)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
