package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"just below a millisecond", 999 * time.Microsecond, "999µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"just below a second", 999 * time.Millisecond, "999ms"},
		{"seconds fall back to default", 2500 * time.Millisecond, "2.5s"},
		{"zero", 0, "0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Duration(tt.d); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
