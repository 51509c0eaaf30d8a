// Package sl holds slog attribute helpers shared across Visionary.
package sl

import "log/slog"

// Err is the attribute used for errors.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
