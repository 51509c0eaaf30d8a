package sl

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErr(t *testing.T) {
	if a := Err(errors.New("boom")); a.Key != "error" || a.Value.String() != "boom" {
		t.Errorf("Err() = %v", a)
	}
	if a := Err(nil); a.Key != "error" || a.Value.String() != "" {
		t.Errorf("Err(nil) = %v", a)
	}
}

func TestErrInHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Warn("failed", Err(errors.New("upstream closed")))

	if !strings.Contains(buf.String(), `error="upstream closed"`) {
		t.Errorf("output = %q", buf.String())
	}
}
