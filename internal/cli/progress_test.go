package cli

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/briandowns/spinner"

	"github.com/plantmath/strainfib/internal/orchestration"
)

// fakeSpinner records lifecycle calls and suffix updates.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func TestSpinnerReporter(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	defer func() { newSpinner = orig }()

	updates := make(chan orchestration.ProgressUpdate, 3)
	updates <- orchestration.ProgressUpdate{EngineIndex: 0, Label: "Sativa", Fraction: 1.0}
	updates <- orchestration.ProgressUpdate{EngineIndex: 1, Label: "Hybrid", Fraction: 1.0}
	close(updates)

	var wg sync.WaitGroup
	wg.Add(1)
	SpinnerReporter{}.DisplayProgress(&wg, updates, 2, io.Discard)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Errorf("spinner lifecycle = started %v, stopped %v; want both true", fake.started, fake.stopped)
	}

	joined := strings.Join(fake.suffixes, "\n")
	if !strings.Contains(joined, "Sativa finished (1/2)") {
		t.Errorf("missing first completion suffix in %q", joined)
	}
	if !strings.Contains(joined, "Hybrid finished (2/2)") {
		t.Errorf("missing final completion suffix in %q", joined)
	}
}
