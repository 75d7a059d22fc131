package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/plantmath/strainfib/internal/orchestration"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 150 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner, decoupling the menu
// and reporter from a specific implementation for easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps `spinner.Spinner` to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerReporter implements orchestration.ProgressReporter with an animated
// spinner that names each strain engine as it finishes.
type SpinnerReporter struct{}

// DisplayProgress runs until the update channel closes, refreshing the
// spinner suffix with the count of finished engines.
func (SpinnerReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.ProgressUpdate, numEngines int, out io.Writer) {
	defer wg.Done()

	spin := newSpinner(spinner.WithWriter(out))
	spin.UpdateSuffix(fmt.Sprintf(" evaluating %d strain engines...", numEngines))
	spin.Start()
	defer spin.Stop()

	done := 0
	for u := range updates {
		if u.Fraction >= 1.0 {
			done++
		}
		spin.UpdateSuffix(fmt.Sprintf(" %s finished (%d/%d)", u.Label, done, numEngines))
	}
}
