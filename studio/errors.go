package studio

import (
	"errors"

	"github.com/petal-labs/visionary/core"
)

var (
	// ErrBusy is returned when a generation is already in flight.
	ErrBusy = errors.New("generation already in progress")

	// ErrImageNotFound is returned for an unknown image ID.
	ErrImageNotFound = errors.New("image not found")
)

// User-facing failure messages.
const (
	MessageCredential    = "API Key Error: Please ensure you have a valid Gemini API Key selected."
	MessageNoImage       = "No image was produced. Try rephrasing the prompt."
	MessageFailed        = "Failed to generate image. Please try again."
	MessageEnhanceFailed = "Failed to enhance prompt."
)

// UserMessage maps a generation error to the message shown to the user.
func UserMessage(err error) string {
	switch core.KindOf(err) {
	case core.ErrCredential:
		return MessageCredential
	case core.ErrNoImage:
		return MessageNoImage
	default:
		return MessageFailed
	}
}

// EnhanceMessage maps a prompt enhancement error to the message shown to the
// user.
func EnhanceMessage(err error) string {
	if errors.Is(err, core.ErrCredential) {
		return MessageCredential
	}
	return MessageEnhanceFailed
}
