package core

import (
	"context"
	"os"
)

// DefaultCredentialEnv lists the environment variables consulted by
// EnvCredential when no names are given.
var DefaultCredentialEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// CredentialSource supplies the API key for a backend call.
// Generators call Credential once per request and never cache the result.
type CredentialSource interface {
	Credential(ctx context.Context) (Secret, error)
}

// CredentialFunc adapts a function to CredentialSource.
type CredentialFunc func(ctx context.Context) (Secret, error)

// Credential calls f.
func (f CredentialFunc) Credential(ctx context.Context) (Secret, error) {
	return f(ctx)
}

// StaticCredential returns a source that always yields key.
func StaticCredential(key string) CredentialSource {
	secret := NewSecret(key)
	return CredentialFunc(func(context.Context) (Secret, error) {
		return secret, nil
	})
}

// EnvCredential returns a source that reads the first non-empty variable
// among names at call time. A missing variable yields an empty Secret, not
// an error: the backend decides how to treat it.
func EnvCredential(names ...string) CredentialSource {
	if len(names) == 0 {
		names = DefaultCredentialEnv
	}
	return CredentialFunc(func(context.Context) (Secret, error) {
		for _, name := range names {
			if v := os.Getenv(name); v != "" {
				return NewSecret(v), nil
			}
		}
		return Secret{}, nil
	})
}

// CredentialChain returns a source that asks each source in order and yields
// the first non-empty credential. Errors stop the chain.
func CredentialChain(sources ...CredentialSource) CredentialSource {
	return CredentialFunc(func(ctx context.Context) (Secret, error) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			secret, err := src.Credential(ctx)
			if err != nil {
				return Secret{}, err
			}
			if !secret.IsEmpty() {
				return secret, nil
			}
		}
		return Secret{}, nil
	})
}
