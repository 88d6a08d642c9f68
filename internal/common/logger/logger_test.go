package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/AlibekovAA/users-api/internal/common/constants"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "users", "warn")

	log.Infof("hidden")
	log.Warnf("shown %d", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info line to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARNING] [users]") || !strings.Contains(out, "shown 1") {
		t.Errorf("expected warning line, got %q", out)
	}
}

func TestLogger_CallerIsUserCode(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", "debug")

	log.Infof("x")
	log.WithFields(context.Background(), Fields{"a": 1}).Debugf("y")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "logger_test.go:") {
			t.Errorf("expected caller to be logger_test.go, got %q", line)
		}
	}
}

func TestEntry_IncludesSortedFieldsAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "users", "info")

	ctx := context.WithValue(context.Background(), constants.TraceIDKey, "abc")
	log.WithFields(ctx, Fields{"b": 2, "a": 1}).Info("done")

	out := buf.String()
	if !strings.Contains(out, "[trace_id=abc a=1 b=2]") {
		t.Errorf("unexpected field rendering: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":    DEBUG,
		" INFO ":   INFO,
		"warn":     WARNING,
		"WARNING":  WARNING,
		"error":    ERROR,
		"critical": CRITICAL,
		"bogus":    INFO,
		"":         INFO,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
