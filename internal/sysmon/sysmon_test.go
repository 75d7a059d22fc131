package sysmon

import (
	"strings"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.Goroutines < 1 {
		t.Errorf("Goroutines = %d, want at least 1", s.Goroutines)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestFooter(t *testing.T) {
	line := Stats{CPUPercent: 12.5, MemPercent: 40.0, Goroutines: 7}.Footer()
	for _, want := range []string{"CPU 12.5%", "MEM 40.0%", "7 goroutines"} {
		if !strings.Contains(line, want) {
			t.Errorf("Footer() = %q, missing %q", line, want)
		}
	}
}
