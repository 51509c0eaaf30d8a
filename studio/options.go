package studio

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Option configures a Session.
type Option func(*Session)

// WithKeySelector installs the key-selection hook.
func WithKeySelector(ks KeySelector) Option {
	return func(s *Session) {
		s.selector = ks
	}
}

// WithClock overrides the time source used for image timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the image ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newUUID() string {
	return uuid.NewString()
}
