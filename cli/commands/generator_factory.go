package commands

import (
	"github.com/petal-labs/visionary/cli/config"
	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/providers"
	_ "github.com/petal-labs/visionary/providers/gemini"
)

// defaultProvider is the registered backend the CLI drives.
const defaultProvider = "gemini"

func defaultGeneratorFactory(creds core.CredentialSource, cfg *config.Config, hook core.TelemetryHook) (core.Generator, error) {
	var baseURL string
	if cfg != nil {
		baseURL = cfg.BaseURL
	}
	return providers.Create(defaultProvider, creds, providers.Config{
		BaseURL:   baseURL,
		Telemetry: hook,
	})
}
