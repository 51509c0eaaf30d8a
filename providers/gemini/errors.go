package gemini

import (
	"errors"
	"strings"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/providers/internal/normalize"
)

// credentialMarkers are message fragments the API uses when the key is
// missing, invalid, or not linked to a project with access to the model.
var credentialMarkers = []string{
	"requested entity was not found",
	"entity not found",
}

// normalizeError converts an HTTP error response to a ProviderError with the appropriate sentinel.
func normalizeError(status int, body []byte, requestID string) error {
	return normalize.GoogleStyleProviderError("gemini", status, body, requestID)
}

// newNetworkError creates a ProviderError for network-related failures.
func newNetworkError(err error) error {
	return normalize.NetworkError("gemini", err)
}

// newDecodeError creates a ProviderError for JSON decode failures.
func newDecodeError(err error) error {
	return normalize.DecodeError("gemini", err)
}

// classifyError maps any failure onto the generation taxonomy.
// Already-classified errors pass through unchanged.
func classifyError(err error) error {
	if err == nil || core.KindOf(err) != nil {
		return err
	}
	if isCredentialError(err) {
		return core.NewCredentialError(err)
	}
	return core.NewGenerationFailed(err)
}

func isCredentialError(err error) bool {
	msg := err.Error()
	var provErr *core.ProviderError
	if errors.As(err, &provErr) {
		msg = provErr.Message + " " + msg
	}
	msg = strings.ToLower(msg)
	for _, marker := range credentialMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
