package studio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/internal/sl"
)

// Session is the caller-held state of one studio.
// It is safe for concurrent use; generations are serialized by the
// in-flight flag, enhance calls are not.
type Session struct {
	gen      core.Generator
	selector KeySelector
	now      func() time.Time
	newID    func() string
	logger   *slog.Logger

	mu         sync.RWMutex
	images     []core.GeneratedImage // newest first
	generating bool
	lastErr    string
}

// State is a point-in-time copy of a Session.
type State struct {
	Images     []core.GeneratedImage `json:"images"`
	Generating bool                  `json:"generating"`
	Error      string                `json:"error,omitempty"`
}

// New creates a Session backed by gen.
func New(gen core.Generator, opts ...Option) *Session {
	s := &Session{
		gen:    gen,
		now:    time.Now,
		newID:  newUUID,
		logger: slog.New(slog.DiscardHandler),
		images: make([]core.GeneratedImage, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enhance rewrites prompt through the generator.
func (s *Session) Enhance(ctx context.Context, prompt string) (string, error) {
	return s.gen.Enhance(ctx, prompt)
}

// Generate submits one generation and, on success, prepends the result to
// the gallery. On failure the matching user message is recorded and the
// classified error is returned.
func (s *Session) Generate(ctx context.Context, prompt string, aspect core.AspectRatio, highQuality bool) (core.GeneratedImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return core.GeneratedImage{}, core.ErrEmptyPrompt
	}
	if !aspect.IsValid() {
		return core.GeneratedImage{}, fmt.Errorf("%w: %q", core.ErrInvalidAspectRatio, aspect)
	}

	if err := s.begin(); err != nil {
		return core.GeneratedImage{}, err
	}
	defer s.finish()

	if highQuality {
		s.preflight(ctx)
	}

	ref, err := s.gen.Generate(ctx, core.GenerationRequest{
		Prompt:      prompt,
		AspectRatio: aspect,
		HighQuality: highQuality,
	})
	if err != nil {
		s.fail(ctx, err)
		return core.GeneratedImage{}, err
	}

	img := core.GeneratedImage{
		ID:          s.newID(),
		URL:         ref,
		Prompt:      prompt,
		Timestamp:   s.now(),
		AspectRatio: aspect,
	}

	s.mu.Lock()
	s.images = append([]core.GeneratedImage{img}, s.images...)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "image generated",
		"id", img.ID,
		"aspect_ratio", string(aspect),
		"high_quality", highQuality)
	return img, nil
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrBusy
	}
	s.generating = true
	s.lastErr = ""
	return nil
}

func (s *Session) finish() {
	s.mu.Lock()
	s.generating = false
	s.mu.Unlock()
}

func (s *Session) fail(ctx context.Context, err error) {
	msg := UserMessage(err)

	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()

	s.logger.WarnContext(ctx, "generation failed", sl.Err(err))
	if core.KindOf(err) == core.ErrCredential {
		s.openSelector(ctx)
	}
}

// Images returns the gallery, newest first.
func (s *Session) Images() []core.GeneratedImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]core.GeneratedImage, len(s.images))
	copy(result, s.images)
	return result
}

// Image returns the image with the given ID.
func (s *Session) Image(id string) (core.GeneratedImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.images, func(img core.GeneratedImage) bool {
		return img.ID == id
	})
}

// Generating reports whether a generation is in flight.
func (s *Session) Generating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating
}

// LastError returns the user-facing message of the last failed generation,
// or "" if the last generation succeeded or none has run.
func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := make([]core.GeneratedImage, len(s.images))
	copy(images, s.images)
	return State{
		Images:     images,
		Generating: s.generating,
		Error:      s.lastErr,
	}
}
