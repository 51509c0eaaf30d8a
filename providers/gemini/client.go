package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/petal-labs/visionary/core"
)

// requestIDHeader is echoed by Google frontends on most responses.
const requestIDHeader = "X-Request-Id"

// track reports a request start and returns the function that classifies
// the outcome and reports the end.
func (p *Gemini) track(op core.Operation, model core.ModelID) func(error) error {
	start := time.Now()
	p.config.Telemetry.OnRequestStart(core.RequestStartEvent{
		Provider:  p.ID(),
		Model:     model,
		Operation: op,
		Start:     start,
	})
	return func(err error) error {
		err = classifyError(err)
		p.config.Telemetry.OnRequestEnd(core.RequestEndEvent{
			Provider:  p.ID(),
			Model:     model,
			Operation: op,
			Start:     start,
			End:       time.Now(),
			Err:       err,
		})
		return err
	}
}

// generateContent performs one generateContent call against model.
// Errors are transport-level; callers classify them.
func (p *Gemini) generateContent(ctx context.Context, model core.ModelID, gemReq *geminiRequest) (*geminiResponse, error) {
	key, err := p.config.Credentials.Credential(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	body, err := json.Marshal(gemReq)
	if err != nil {
		return nil, newDecodeError(err)
	}

	// Model is in the URL path
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.config.BaseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}

	for name, values := range p.buildHeaders(key) {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	httpResp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if httpResp.StatusCode >= 400 {
		return nil, normalizeError(httpResp.StatusCode, respBody, httpResp.Header.Get(requestIDHeader))
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return nil, newDecodeError(err)
	}

	return &gemResp, nil
}
