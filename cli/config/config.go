// Package config handles CLI configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/petal-labs/visionary/cli/logging"
	"github.com/petal-labs/visionary/core"
)

// Defaults applied by LoadConfig.
const (
	DefaultAPIKeyRef  = "gemini"
	DefaultServerAddr = "127.0.0.1:8080"
	DefaultEnvFile    = ".env"
)

// Config represents the CLI configuration.
type Config struct {
	BaseURL            string       `yaml:"base_url,omitempty"`
	APIKeyEnv          []string     `yaml:"api_key_env,omitempty"`
	APIKeyRef          string       `yaml:"api_key_ref,omitempty"`
	EnvFile            string       `yaml:"env_file,omitempty"`
	DefaultAspectRatio string       `yaml:"default_aspect_ratio,omitempty"`
	HighQuality        bool         `yaml:"high_quality"`
	Server             ServerConfig `yaml:"server"`
	Log                LogConfig    `yaml:"log"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// LogConfig configures CLI logging.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		APIKeyEnv:          append([]string(nil), core.DefaultCredentialEnv...),
		APIKeyRef:          DefaultAPIKeyRef,
		EnvFile:            DefaultEnvFile,
		DefaultAspectRatio: string(core.AspectRatioSquare),
		Server:             ServerConfig{Addr: DefaultServerAddr},
		Log:                LogConfig{Level: "info", Format: logging.FormatText},
	}
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.visionary/config.yaml
// - Windows: %USERPROFILE%\.visionary\config.yaml
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ".visionary", "config.yaml")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE")
	}
	return os.Getenv("HOME")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns the defaults without error.
// Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	var errs []error
	if c.DefaultAspectRatio != "" {
		if _, err := core.ParseAspectRatio(c.DefaultAspectRatio); err != nil {
			errs = append(errs, fmt.Errorf("default_aspect_ratio: %w", err))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}
	return errors.Join(errs...)
}

// AspectRatio returns the configured default aspect ratio.
func (c *Config) AspectRatio() core.AspectRatio {
	ratio, err := core.ParseAspectRatio(c.DefaultAspectRatio)
	if err != nil {
		return core.AspectRatioSquare
	}
	return ratio
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set are not overridden. A missing file
// is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
