package logging

import (
	"bytes"
	"errors"
	stdlog "log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("strain", "sativa"), "strain", "sativa"},
		{"Int", Int("chunk", 10), "chunk", 10},
		{"Uint64", Uint64("n", 186), "n", uint64(186)},
		{"Float64", Float64("multiplier", 1.2), "multiplier", 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}

	t.Run("Err", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("boom")
		f := Err(cause)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != cause {
			t.Errorf("Err().Value = %v, want %v", f.Value, cause)
		}
	})
}

func TestZerologAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("range computed",
		Uint64("start", 20),
		Uint64("end", 41),
		Int("chunks", 3),
		Float64("multiplier", 1.0),
		String("strain", "Hybrid"),
		Field{Key: "partial", Value: false},
	)

	out := buf.String()
	for _, want := range []string{`"message":"range computed"`, `"start":20`, `"end":41`, `"chunks":3`, `"strain":"Hybrid"`, `"partial":false`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestZerologAdapterError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	adapter.Error("chunk worker failed", errors.New("panic: nil map"))

	out := buf.String()
	if !strings.Contains(out, `"error":"panic: nil map"`) {
		t.Errorf("log output missing error field: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("log output missing error level: %s", out)
	}
}

func TestNewLoggerComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewLogger(&buf, "engine").Info("cache seeded")
	if !strings.Contains(buf.String(), `"component":"engine"`) {
		t.Errorf("log output missing component field: %s", buf.String())
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(stdlog.New(&buf, "", 0))

	adapter.Info("started")
	adapter.Error("failed", errors.New("cause"))
	adapter.Debug("probe", Int("n", 5))

	out := buf.String()
	for _, want := range []string{"[INFO] started", "[ERROR] failed: cause", "[DEBUG] probe"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	// Must not panic; a Nop logger is the engine default.
	var l Logger = Nop{}
	l.Info("ignored")
	l.Error("ignored", errors.New("ignored"))
	l.Debug("ignored")
}
