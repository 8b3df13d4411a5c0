package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "text", &buf)

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected 'test message' in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected 'key=value' in output, got: %s", output)
	}
}

func TestNewLoggerWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "json", &buf)

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Errorf("expected JSON msg field in output, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected JSON key field in output, got: %s", output)
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("should not appear")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("INFO message should be filtered at WARN level, got: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("WARN message should appear at WARN level, got: %s", output)
	}
}

func TestNewLoggerWithWriter_ChildLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelDebug, "text", &buf)
	child := logger.With("component", "schedule")

	child.Debug("schedule computed", "strategy", "EDF")

	output := buf.String()
	if !strings.Contains(output, "component=schedule") {
		t.Errorf("expected component in output, got: %s", output)
	}
	if !strings.Contains(output, "strategy=EDF") {
		t.Errorf("expected strategy in output, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLoggerWithWriter_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "console", &buf)

	logger.With("component", "http").Info("request", "method", "GET", "path", "/api/v1/tasks", "status", 200, "request_id", "req_1")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 attribute line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "INFO  http GET /api/v1/tasks 200 request") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if strings.Contains(lines[0], "\x1b[") {
		t.Errorf("color escapes written to a non-terminal: %q", lines[0])
	}
	if lines[1] != "    request_id=req_1" {
		t.Errorf("attribute line = %q", lines[1])
	}
}

func TestConsoleHandler_ErrorAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, slog.LevelDebug, false))

	logger.WithGroup("db").Error("migrate failed", "error", "disk full", "path", "/tmp/x.db")

	out := buf.String()
	if !strings.Contains(out, "ERROR migrate failed") {
		t.Errorf("missing level/message: %q", out)
	}
	if !strings.Contains(out, "    db.error=disk full") {
		t.Errorf("grouped error attribute missing: %q", out)
	}
	if !strings.Contains(out, "    db.path=/tmp/x.db") {
		t.Errorf("grouped attribute missing: %q", out)
	}
}

func TestConsoleHandler_InlineError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, nil, false))

	logger.Debug("hidden")
	logger.Warn("store failed", "error", "locked")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record should be filtered at default level: %q", out)
	}
	if !strings.Contains(out, "WARN  store failed locked\n") {
		t.Errorf("error not printed inline: %q", out)
	}
}

func TestConsoleHandler_Color(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, slog.LevelInfo, true))
	logger.Info("colored")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", buf.String())
	}
}
