// Package keystore provides encrypted on-disk storage for API keys.
package keystore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/petal-labs/visionary/core"
)

// Keystore defines the interface for secure key storage.
type Keystore interface {
	// Set stores a key-value pair.
	Set(name, value string) error
	// Get retrieves a value by name. Returns *ErrKeyNotFound if absent.
	Get(name string) (string, error)
	// Delete removes a key by name.
	Delete(name string) error
	// List returns all stored key names, sorted.
	List() ([]string, error)
}

// ErrKeyNotFound is returned when a requested key does not exist.
type ErrKeyNotFound struct {
	Name string
}

func (e *ErrKeyNotFound) Error() string {
	return "key not found: " + e.Name
}

// DefaultKeystorePath returns the default keystore file path.
// - macOS/Linux: ~/.visionary/keys.enc
// - Windows: %USERPROFILE%\.visionary\keys.enc
func DefaultKeystorePath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "keys.enc"
	}

	return filepath.Join(homeDir, ".visionary", "keys.enc")
}

// NewKeystore opens the default keystore with the default master key source.
func NewKeystore() (Keystore, error) {
	return NewFileKeystore(DefaultKeystorePath(), DefaultMasterKeySource())
}

// Credential adapts a stored entry to core.CredentialSource. The entry is
// read on every call; a missing entry yields an empty credential.
func Credential(ks Keystore, name string) core.CredentialSource {
	return core.CredentialFunc(func(context.Context) (core.Secret, error) {
		value, err := ks.Get(name)
		if err != nil {
			var notFound *ErrKeyNotFound
			if errors.As(err, &notFound) {
				return core.Secret{}, nil
			}
			return core.Secret{}, err
		}
		return core.NewSecret(value), nil
	})
}
