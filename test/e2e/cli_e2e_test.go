package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the real binary and exercises it the way a user would,
// covering the direct-computation, benchmark, and error paths end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end binary test in short mode")
	}

	tmpDir := t.TempDir()
	binName := "strainfib"
	if runtime.GOOS == "windows" {
		binName = "strainfib.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test sets the CWD to this package directory; the module root is
	// two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/strainfib")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build strainfib: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Basic Calculation",
			args:     []string{"-n", "10"},
			wantOut:  "Fibonacci(10) = 55",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-n", "10", "-quiet"},
			wantOut:  "55",
			wantCode: 0,
		},
		{
			name:     "Sativa Distortion",
			args:     []string{"-strain", "sativa", "-n", "12", "-quiet"},
			wantOut:  "334",
			wantCode: 0,
		},
		{
			name:     "Largest Safe Index",
			args:     []string{"-n", "186", "-quiet"},
			wantOut:  "332825110087067562321196029789634457848",
			wantCode: 0,
		},
		{
			name:     "Overflow Guard",
			args:     []string{"-n", "500"},
			wantOut:  "overflow risk",
			wantCode: 1,
		},
		{
			name:     "Unknown Strain",
			args:     []string{"-strain", "kush", "-n", "10"},
			wantOut:  "unknown strain",
			wantCode: 4,
		},
		{
			name:     "Benchmark Sweep",
			args:     []string{"-bench", "-bench-max", "20"},
			wantOut:  "timing sweep",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"-h"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "strainfib",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed unexpectedly: %v\noutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("expected exit code %d, but command succeeded.\noutput: %s", tt.wantCode, outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("exit code mismatch: got %d, want %d\noutput: %s",
							exitErr.ExitCode(), tt.wantCode, outStr)
					}
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing expected string.\nwant substring: %q\ngot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
