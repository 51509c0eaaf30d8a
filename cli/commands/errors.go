package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/studio"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
	ExitCredential = 4
)

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// fail reports err on stderr and returns it with code.
func (a *App) fail(code int, err error) error {
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return exitWithCode(code, err)
}

// classify maps an error to an exit code and a short type label.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrEmptyPrompt), errors.Is(err, core.ErrInvalidAspectRatio):
		return ExitValidation, "validation_error"
	case errors.Is(err, core.ErrCredential):
		return ExitCredential, "credential_error"
	case errors.Is(err, core.ErrNetwork):
		return ExitNetwork, "network_error"
	case errors.Is(err, core.ErrNoImage):
		return ExitProvider, "no_image"
	default:
		return ExitProvider, "generation_failed"
	}
}

// handleError reports err on stderr and returns it with its exit code.
func (a *App) handleError(err error) error {
	return a.handleErrorWith(err, studio.UserMessage)
}

// handleErrorWith is handleError with a custom message for classified
// failures.
func (a *App) handleErrorWith(err error, userMessage func(error) string) error {
	code, errType := classify(err)

	message := err.Error()
	if core.KindOf(err) != nil {
		message = userMessage(err)
	}

	if a.jsonOutput {
		detail := map[string]any{
			"type":    errType,
			"message": message,
		}
		var provErr *core.ProviderError
		if errors.As(err, &provErr) {
			detail["provider"] = provErr.Provider
			detail["status"] = provErr.Status
			if provErr.RequestID != "" {
				detail["request_id"] = provErr.RequestID
			}
		}
		enc := json.NewEncoder(a.stderr)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{"error": detail})
	} else {
		fmt.Fprintf(a.stderr, "Error: %s\n", message)
		if message != err.Error() {
			fmt.Fprintf(a.stderr, "  cause: %v\n", err)
		}
	}

	return exitWithCode(code, err)
}
