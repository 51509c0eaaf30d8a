package logging

import (
	"context"
	"log/slog"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/internal/sl"
)

// TelemetryHook logs backend requests. Starts are logged at debug, successes
// at info, failures at warn with the failure kind.
type TelemetryHook struct {
	Logger *slog.Logger
}

// OnRequestStart implements core.TelemetryHook.
func (h TelemetryHook) OnRequestStart(e core.RequestStartEvent) {
	h.Logger.LogAttrs(context.Background(), slog.LevelDebug, "backend request",
		slog.String("provider", e.Provider),
		slog.String("model", string(e.Model)),
		slog.String("operation", string(e.Operation)))
}

// OnRequestEnd implements core.TelemetryHook.
func (h TelemetryHook) OnRequestEnd(e core.RequestEndEvent) {
	attrs := []slog.Attr{
		slog.String("provider", e.Provider),
		slog.String("model", string(e.Model)),
		slog.String("operation", string(e.Operation)),
		slog.Duration("duration", e.Duration()),
	}
	if e.Err == nil {
		h.Logger.LogAttrs(context.Background(), slog.LevelInfo, "backend request done", attrs...)
		return
	}
	if kind := core.KindOf(e.Err); kind != nil {
		attrs = append(attrs, slog.String("kind", kind.Error()))
	}
	attrs = append(attrs, sl.Err(e.Err))
	h.Logger.LogAttrs(context.Background(), slog.LevelWarn, "backend request failed", attrs...)
}

var _ core.TelemetryHook = TelemetryHook{}
