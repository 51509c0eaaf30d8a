// Package normalize turns backend HTTP failures into core.ProviderError values.
package normalize

import (
	"encoding/json"
	"net/http"

	"github.com/petal-labs/visionary/core"
)

// googleErrorResponse is the envelope Google APIs use:
// {"error":{"code":404,"message":"...","status":"NOT_FOUND"}}
type googleErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GoogleStyleProviderError normalizes a Google API error body.
// Unparseable bodies fall back to the HTTP status text.
func GoogleStyleProviderError(provider string, status int, body []byte, requestID string) error {
	var errResp googleErrorResponse
	_ = json.Unmarshal(body, &errResp)

	code := errResp.Error.Status
	if code == "" {
		code = "unknown_error"
	}

	return ProviderError(provider, status, requestID, code, errResp.Error.Message, SentinelForStatus(status))
}

// NetworkError wraps transport failures as provider-specific network errors.
func NetworkError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrNetwork,
	}
}

// DecodeError wraps decode/parsing failures as provider-specific decode errors.
func DecodeError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}

// ProviderError constructs a normalized ProviderError.
// If message is empty, HTTP status text is used.
// If sentinel is nil, default status-based mapping is applied.
func ProviderError(provider string, status int, requestID, code, message string, sentinel error) error {
	if message == "" {
		message = http.StatusText(status)
	}
	if sentinel == nil {
		sentinel = SentinelForStatus(status)
	}
	return &core.ProviderError{
		Provider:  provider,
		Status:    status,
		RequestID: requestID,
		Code:      code,
		Message:   message,
		Err:       sentinel,
	}
}

// SentinelForStatus maps an HTTP status code to a core sentinel error.
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusNotFound:
		return core.ErrNotFound
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	default:
		return core.ErrServer
	}
}
