package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelWarn)
	l.SetOutput(&buf)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("low-level messages not filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("high-level messages missing: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelInfo)
	l.SetOutput(&buf)

	l.WithComponent("shell").Info("ready")

	out := buf.String()
	if !strings.Contains(out, "component=shell") {
		t.Errorf("output missing component field: %q", out)
	}
	if !strings.Contains(out, "cutline: ready") {
		t.Errorf("output missing prefixed message: %q", out)
	}
}

func TestLoggerChildDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelInfo)
	l.SetOutput(&buf)

	_ = l.WithField("k", "v")
	l.Info("plain")

	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelInfo)
	l.SetOutput(&buf)

	l.Info("loaded %d presets from %s", 3, "dir")

	if !strings.Contains(buf.String(), "loaded 3 presets from dir") {
		t.Errorf("formatting not applied: %q", buf.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	var buf bytes.Buffer
	NullLogger.SetOutput(&buf)
	NullLogger.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("NullLogger wrote output: %q", buf.String())
	}
}
