package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInitAndLog(t *testing.T) {
	Init("debug", "json")
	if defaultLogger == nil {
		t.Fatal("Expected defaultLogger to be set")
	}

	// Should not panic
	Info("info message", "key", "value")
	Warn("warn message")
	Debug("debug message")
	Error("error message")
}

func TestWithContext(t *testing.T) {
	Init("info", "text")

	ctx := context.WithValue(context.Background(), "request_id", "req-123") //nolint:staticcheck // string context key used intentionally for cross-package simplicity
	l := WithContext(ctx)
	if l == nil {
		t.Fatal("Expected a logger")
	}
}
