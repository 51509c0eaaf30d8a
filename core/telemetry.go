package core

import "time"

// TelemetryHook receives notifications about backend request lifecycle
// events. Events never include API keys, prompts, or image payloads, so they
// are safe to log or export.
type TelemetryHook interface {
	// OnRequestStart is called before a request is sent.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called after a request completes or fails.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Provider  string    // Provider identifier (e.g., "gemini")
	Model     ModelID   // Model being called
	Operation Operation // enhance or generate
	Start     time.Time // When the request started
}

// RequestEndEvent contains metadata about a completed request.
type RequestEndEvent struct {
	Provider  string
	Model     ModelID
	Operation Operation
	Start     time.Time
	End       time.Time
	// Err is the classified error if the request failed, nil on success.
	Err error
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

var _ TelemetryHook = NoopTelemetryHook{}
