// Package format provides display formatting helpers shared by the CLI and TUI.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. Sub-millisecond durations are
// shown in microseconds and sub-second durations in milliseconds; anything
// longer falls back to the default string representation. Benchmark samples
// for small indices complete in microseconds, so the default formatting would
// be unreadable there.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
