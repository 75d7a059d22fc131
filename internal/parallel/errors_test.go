package parallel

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestErrorCollectorFirstErrorWins(t *testing.T) {
	t.Parallel()

	var ec ErrorCollector
	first := errors.New("first")
	ec.SetError(first)
	ec.SetError(errors.New("second"))

	if got := ec.Err(); got != first {
		t.Errorf("Err() = %v, want the first recorded error", got)
	}
}

func TestErrorCollectorNilIgnored(t *testing.T) {
	t.Parallel()

	var ec ErrorCollector
	ec.SetError(nil)
	if ec.Err() != nil {
		t.Error("Err() != nil after SetError(nil)")
	}

	real := errors.New("real")
	ec.SetError(nil)
	ec.SetError(real)
	if ec.Err() != real {
		t.Errorf("Err() = %v, want %v", ec.Err(), real)
	}
}

// TestErrorCollectorContention verifies that exactly one error survives when
// many goroutines report simultaneously, as the chunk workers of a range
// computation do.
func TestErrorCollectorContention(t *testing.T) {
	t.Parallel()

	const workers = 256
	for round := 0; round < 20; round++ {
		var ec ErrorCollector
		var wg sync.WaitGroup
		start := make(chan struct{})

		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(id int) {
				defer wg.Done()
				<-start
				ec.SetError(fmt.Errorf("chunk %d failed", id))
			}(i)
		}
		close(start)
		wg.Wait()

		err := ec.Err()
		if err == nil {
			t.Fatalf("round %d: expected an error, got nil", round)
		}
		if !strings.HasPrefix(err.Error(), "chunk ") {
			t.Errorf("round %d: unexpected error: %v", round, err)
		}
	}
}
