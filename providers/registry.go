package providers

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/petal-labs/visionary/core"
)

// Config carries the settings every backend understands.
// Zero values select the backend defaults.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Telemetry  core.TelemetryHook
}

// Factory creates a generator that reads its key from creds.
type Factory func(creds core.CredentialSource, cfg Config) core.Generator

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a factory to the registry.
// It is typically called from a backend's init() function.
// Registering an existing name overwrites it.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a factory by name, or nil if none is registered.
func Get(name string) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Create creates a generator by name.
func Create(name string, creds core.CredentialSource, cfg Config) (core.Generator, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", name, List())
	}
	return factory(creds, cfg), nil
}

// List returns the names of all registered backends in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered returns true if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
