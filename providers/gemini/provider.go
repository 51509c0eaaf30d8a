package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/petal-labs/visionary/core"
)

// Gemini is the generation client for the Google Gemini API.
// It holds no mutable state and is safe for concurrent use.
type Gemini struct {
	config Config
}

// New creates a Gemini client that reads its key from creds on every call.
// A nil creds sends requests without a key.
func New(creds core.CredentialSource, opts ...Option) *Gemini {
	if creds == nil {
		creds = core.StaticCredential("")
	}
	cfg := Config{
		Credentials: creds,
		BaseURL:     DefaultBaseURL,
		HTTPClient:  http.DefaultClient,
		Telemetry:   core.NoopTelemetryHook{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Gemini{config: cfg}
}

// ID returns the provider identifier.
func (p *Gemini) ID() string {
	return "gemini"
}

// Models returns the models this client calls.
func (p *Gemini) Models() []ModelInfo {
	// Return a copy to prevent mutation
	result := make([]ModelInfo, len(models))
	copy(result, models)
	return result
}

// buildHeaders constructs the HTTP headers for an API request.
func (p *Gemini) buildHeaders(key core.Secret) http.Header {
	headers := make(http.Header)

	headers.Set("x-goog-api-key", key.Expose())
	headers.Set("Content-Type", "application/json")

	for name, values := range p.config.Headers {
		for _, v := range values {
			headers.Add(name, v)
		}
	}

	return headers
}

// Enhance rewrites prompt into a detailed, cinematic image prompt using the
// fixed text model. An empty prompt, or an empty answer from the backend,
// yields the original prompt.
func (p *Gemini) Enhance(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return prompt, nil
	}

	done := p.track(core.OperationEnhance, ModelEnhance)
	resp, err := p.generateContent(ctx, ModelEnhance, buildEnhanceRequest(prompt))
	if err != nil {
		return "", done(err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return prompt, done(nil)
	}
	return text, done(nil)
}

// Generate produces one image for req.
// The quality flag selects the model: fast model without a size tier, or the
// pro model at 1K.
func (p *Gemini) Generate(ctx context.Context, req core.GenerationRequest) (core.ImageRef, error) {
	model := selectImageModel(req.HighQuality)

	done := p.track(core.OperationGenerate, model.id)
	resp, err := p.generateContent(ctx, model.id, buildImageRequest(req, model))
	if err != nil {
		return "", done(err)
	}

	ref, ok := firstImage(resp)
	if !ok {
		return "", done(core.NewNoImageError(noImageDetail(resp)))
	}
	return ref, done(nil)
}

// Compile-time check that Gemini implements Generator.
var _ core.Generator = (*Gemini)(nil)
