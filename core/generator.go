package core

import "context"

// Generator is implemented by image generation backends.
// Implementations must be safe for concurrent use and must not retry.
type Generator interface {
	// ID returns the provider identifier (e.g., "gemini").
	ID() string

	// Enhance rewrites prompt into a richer image prompt. When the backend
	// returns no text, the original prompt is returned without error.
	Enhance(ctx context.Context, prompt string) (string, error)

	// Generate produces one image for req. Failures match ErrCredential,
	// ErrNoImage or ErrGenerationFailed.
	Generate(ctx context.Context, req GenerationRequest) (ImageRef, error)
}
