package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/petal-labs/visionary/core"
)

func TestNewJSONDropsTime(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, FormatJSON).Info("hello", "k", "v")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if _, ok := entry["time"]; ok {
		t.Error("time attribute should be dropped")
	}
	if entry["msg"] != "hello" || entry["k"] != "v" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, FormatText)
	logger.Info("quiet")
	logger.Warn("loud")

	if strings.Contains(buf.String(), "quiet") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Error("warn message should be written")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, _ := ParseFormat(""); f != FormatText {
		t.Errorf("default format = %q, want text", f)
	}
	if f, _ := ParseFormat("JSON"); f != FormatJSON {
		t.Errorf("format = %q, want json", f)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := New(&bytes.Buffer{}, slog.LevelInfo, FormatText)
	ctx := NewContext(context.Background(), logger)

	if FromContextOrDiscard(ctx) != logger {
		t.Error("logger not found in context")
	}
	if FromContextOrDiscard(context.Background()) == nil {
		t.Error("discard logger should not be nil")
	}
}

func TestTelemetryHook(t *testing.T) {
	var buf bytes.Buffer
	hook := TelemetryHook{Logger: New(&buf, slog.LevelDebug, FormatJSON)}

	start := time.Now()
	hook.OnRequestStart(core.RequestStartEvent{Provider: "gemini", Model: "m", Operation: core.OperationGenerate, Start: start})
	hook.OnRequestEnd(core.RequestEndEvent{
		Provider:  "gemini",
		Model:     "m",
		Operation: core.OperationGenerate,
		Start:     start,
		End:       start.Add(time.Second),
		Err:       core.NewNoImageError("finish reason IMAGE_SAFETY"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}

	var end map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatal(err)
	}
	if end["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", end["level"])
	}
	if end["kind"] != core.ErrNoImage.Error() {
		t.Errorf("kind = %v", end["kind"])
	}
	if end["operation"] != "generate" {
		t.Errorf("operation = %v", end["operation"])
	}
}
