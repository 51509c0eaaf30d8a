package core

import (
	"errors"
	"fmt"
)

// ProviderError represents an error returned by a backend with full context.
type ProviderError struct {
	Provider  string
	Status    int
	RequestID string
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status=%d, code=%s, request_id=%s)",
			e.Provider, e.Message, e.Status, e.Code, e.RequestID)
	}
	return fmt.Sprintf("%s: %s (status=%d, code=%s)",
		e.Provider, e.Message, e.Status, e.Code)
}

// Unwrap returns the underlying error for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Transport-level sentinels carried by ProviderError.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
)

// Generation failure kinds. Every error returned by a Generator matches
// exactly one of these with errors.Is.
var (
	ErrCredential       = errors.New("credential rejected")
	ErrNoImage          = errors.New("no image in response")
	ErrGenerationFailed = errors.New("generation failed")
)

// Validation errors raised before any backend call.
var (
	ErrEmptyPrompt        = errors.New("prompt required: enter a description of the image")
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
)

// GenerationError is a classified generation failure.
type GenerationError struct {
	// Kind is one of ErrCredential, ErrNoImage, ErrGenerationFailed.
	Kind    error
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches the failure kind.
func (e *GenerationError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the cause.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewCredentialError classifies cause as a credential failure.
func NewCredentialError(cause error) error {
	return newGenerationError(ErrCredential, cause)
}

// NewGenerationFailed classifies cause as a generic failure.
func NewGenerationFailed(cause error) error {
	return newGenerationError(ErrGenerationFailed, cause)
}

// NewNoImageError reports a response without an image part.
// detail may be empty.
func NewNoImageError(detail string) error {
	return &GenerationError{Kind: ErrNoImage, Message: detail}
}

func newGenerationError(kind, cause error) error {
	e := &GenerationError{Kind: kind, Err: cause}
	if cause != nil {
		var provErr *ProviderError
		if errors.As(cause, &provErr) {
			e.Message = provErr.Message
		} else {
			e.Message = cause.Error()
		}
	}
	return e
}

// KindOf returns the failure kind of err, or nil if err is not classified.
func KindOf(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCredential):
		return ErrCredential
	case errors.Is(err, ErrNoImage):
		return ErrNoImage
	case errors.Is(err, ErrGenerationFailed):
		return ErrGenerationFailed
	default:
		return nil
	}
}
