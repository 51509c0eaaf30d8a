package studio

import (
	"context"

	"github.com/petal-labs/visionary/internal/sl"
)

// KeySelector is the optional host hook that lets the user pick an API key
// before a high-quality generation, and again after a credential failure.
type KeySelector interface {
	// HasSelectedKey reports whether the user has already picked a key.
	HasSelectedKey(ctx context.Context) (bool, error)
	// OpenSelectKey prompts the user to pick a key. It returns once the
	// prompt is dismissed; it does not report whether a key was chosen.
	OpenSelectKey(ctx context.Context) error
}

// preflight runs the key-selection check for high-quality generations.
// Selector failures are logged and never block generation.
func (s *Session) preflight(ctx context.Context) {
	if s.selector == nil {
		return
	}
	has, err := s.selector.HasSelectedKey(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "key selector check failed", sl.Err(err))
		return
	}
	if has {
		return
	}
	s.openSelector(ctx)
}

func (s *Session) openSelector(ctx context.Context) {
	if s.selector == nil {
		return
	}
	if err := s.selector.OpenSelectKey(ctx); err != nil {
		s.logger.WarnContext(ctx, "open key selector failed", sl.Err(err))
	}
}
