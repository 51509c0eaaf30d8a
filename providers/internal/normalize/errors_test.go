package normalize

import (
	"errors"
	"net/http"
	"testing"

	"github.com/petal-labs/visionary/core"
)

func TestGoogleStyleProviderError(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         []byte
		requestID    string
		wantCode     string
		wantMsg      string
		wantSentinel error
	}{
		{
			name:         "bad request",
			status:       http.StatusBadRequest,
			body:         []byte(`{"error":{"code":400,"message":"Invalid argument","status":"INVALID_ARGUMENT"}}`),
			requestID:    "req-123",
			wantCode:     "INVALID_ARGUMENT",
			wantMsg:      "Invalid argument",
			wantSentinel: core.ErrBadRequest,
		},
		{
			name:         "entity not found",
			status:       http.StatusNotFound,
			body:         []byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`),
			wantCode:     "NOT_FOUND",
			wantMsg:      "Requested entity was not found.",
			wantSentinel: core.ErrNotFound,
		},
		{
			name:         "permission denied",
			status:       http.StatusForbidden,
			body:         []byte(`{"error":{"code":403,"message":"Permission denied","status":"PERMISSION_DENIED"}}`),
			wantCode:     "PERMISSION_DENIED",
			wantMsg:      "Permission denied",
			wantSentinel: core.ErrUnauthorized,
		},
		{
			name:         "rate limited",
			status:       http.StatusTooManyRequests,
			body:         []byte(`{"error":{"code":429,"message":"Resource exhausted","status":"RESOURCE_EXHAUSTED"}}`),
			wantCode:     "RESOURCE_EXHAUSTED",
			wantMsg:      "Resource exhausted",
			wantSentinel: core.ErrRateLimited,
		},
		{
			name:         "fallback to status text",
			status:       http.StatusBadGateway,
			body:         []byte(`<html>bad gateway</html>`),
			wantCode:     "unknown_error",
			wantMsg:      "Bad Gateway",
			wantSentinel: core.ErrServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GoogleStyleProviderError("test-provider", tt.status, tt.body, tt.requestID)

			var provErr *core.ProviderError
			if !errors.As(err, &provErr) {
				t.Fatal("expected *core.ProviderError")
			}

			if provErr.Provider != "test-provider" {
				t.Errorf("Provider = %q, want test-provider", provErr.Provider)
			}
			if provErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", provErr.Status, tt.status)
			}
			if provErr.RequestID != tt.requestID {
				t.Errorf("RequestID = %q, want %q", provErr.RequestID, tt.requestID)
			}
			if provErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", provErr.Code, tt.wantCode)
			}
			if provErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", provErr.Message, tt.wantMsg)
			}
			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("error should wrap %v", tt.wantSentinel)
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	err := NetworkError("test-provider", errors.New("connection refused"))

	var provErr *core.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatal("expected *core.ProviderError")
	}
	if provErr.Message != "connection refused" {
		t.Errorf("Message = %q, want connection refused", provErr.Message)
	}
	if !errors.Is(err, core.ErrNetwork) {
		t.Error("error should wrap core.ErrNetwork")
	}
}

func TestDecodeError(t *testing.T) {
	err := DecodeError("test-provider", errors.New("unexpected EOF"))
	if !errors.Is(err, core.ErrDecode) {
		t.Error("error should wrap core.ErrDecode")
	}
}

func TestProviderErrorDefaults(t *testing.T) {
	err := ProviderError("p", http.StatusInternalServerError, "", "", "", nil)

	var provErr *core.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatal("expected *core.ProviderError")
	}
	if provErr.Message != "Internal Server Error" {
		t.Errorf("Message = %q, want Internal Server Error", provErr.Message)
	}
	if !errors.Is(err, core.ErrServer) {
		t.Error("error should wrap core.ErrServer")
	}
}
