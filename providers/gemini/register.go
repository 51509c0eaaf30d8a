package gemini

import (
	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/providers"
)

func init() {
	providers.Register("gemini", func(creds core.CredentialSource, cfg providers.Config) core.Generator {
		opts := []Option{WithHTTPClient(cfg.HTTPClient), WithTelemetry(cfg.Telemetry)}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		return New(creds, opts...)
	})
}
