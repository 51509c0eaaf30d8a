package core

import (
	"fmt"
	"strings"
	"time"
)

// ModelID is a string identifier for a backend model.
type ModelID string

// Operation names a generator operation in telemetry events.
type Operation string

const (
	OperationEnhance  Operation = "enhance"
	OperationGenerate Operation = "generate"
)

// AspectRatio is the width:height label of a requested image.
type AspectRatio string

const (
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioPortrait  AspectRatio = "3:4"
	AspectRatioLandscape AspectRatio = "4:3"
	AspectRatioWide      AspectRatio = "16:9"
	AspectRatioTall      AspectRatio = "9:16"
)

var aspectRatios = []AspectRatio{
	AspectRatioSquare,
	AspectRatioPortrait,
	AspectRatioLandscape,
	AspectRatioWide,
	AspectRatioTall,
}

// AspectRatios returns every supported aspect ratio in display order.
func AspectRatios() []AspectRatio {
	result := make([]AspectRatio, len(aspectRatios))
	copy(result, aspectRatios)
	return result
}

// IsValid reports whether the aspect ratio is a recognized value.
func (a AspectRatio) IsValid() bool {
	switch a {
	case AspectRatioSquare, AspectRatioPortrait, AspectRatioLandscape, AspectRatioWide, AspectRatioTall:
		return true
	default:
		return false
	}
}

// Label returns a human-readable name for the ratio.
func (a AspectRatio) Label() string {
	switch a {
	case AspectRatioSquare:
		return "Square"
	case AspectRatioPortrait:
		return "Portrait"
	case AspectRatioLandscape:
		return "Landscape"
	case AspectRatioWide:
		return "Wide"
	case AspectRatioTall:
		return "Tall"
	default:
		return string(a)
	}
}

// ParseAspectRatio converts a string to an AspectRatio.
// Both the ratio form ("16:9") and the lowercase label ("wide") are accepted.
func ParseAspectRatio(s string) (AspectRatio, error) {
	a := AspectRatio(s)
	if a.IsValid() {
		return a, nil
	}
	for _, candidate := range aspectRatios {
		if strings.EqualFold(candidate.Label(), s) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %v)", ErrInvalidAspectRatio, s, aspectRatios)
}

// GenerationRequest describes a single image generation call.
type GenerationRequest struct {
	Prompt      string      `json:"prompt"`
	AspectRatio AspectRatio `json:"aspect_ratio"`
	HighQuality bool        `json:"high_quality"`
}

// GeneratedImage is one successful generation held in a session.
type GeneratedImage struct {
	ID          string      `json:"id"`
	URL         ImageRef    `json:"url"`
	Prompt      string      `json:"prompt"`
	Timestamp   time.Time   `json:"timestamp"`
	AspectRatio AspectRatio `json:"aspect_ratio"`
}
