package core

import (
	"context"
	"errors"
	"testing"
)

func TestEnvCredentialReadsAtCallTime(t *testing.T) {
	t.Setenv("VISIONARY_TEST_KEY", "first")
	src := EnvCredential("VISIONARY_TEST_KEY")

	got, err := src.Credential(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Expose() != "first" {
		t.Errorf("Credential() = %q, want first", got.Expose())
	}

	t.Setenv("VISIONARY_TEST_KEY", "rotated")
	got, _ = src.Credential(context.Background())
	if got.Expose() != "rotated" {
		t.Errorf("Credential() after rotation = %q, want rotated", got.Expose())
	}
}

func TestEnvCredentialOrderAndMissing(t *testing.T) {
	t.Setenv("VISIONARY_A", "")
	t.Setenv("VISIONARY_B", "b-key")

	got, _ := EnvCredential("VISIONARY_A", "VISIONARY_B").Credential(context.Background())
	if got.Expose() != "b-key" {
		t.Errorf("Credential() = %q, want b-key", got.Expose())
	}

	got, err := EnvCredential("VISIONARY_A").Credential(context.Background())
	if err != nil {
		t.Fatalf("missing variable should not error: %v", err)
	}
	if !got.IsEmpty() {
		t.Error("missing variable should yield empty secret")
	}
}

func TestCredentialChain(t *testing.T) {
	empty := StaticCredential("")
	key := StaticCredential("chain-key")
	failing := CredentialFunc(func(context.Context) (Secret, error) {
		return Secret{}, errors.New("keystore locked")
	})

	got, err := CredentialChain(empty, nil, key, failing).Credential(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Expose() != "chain-key" {
		t.Errorf("Credential() = %q, want chain-key", got.Expose())
	}

	if _, err := CredentialChain(empty, failing).Credential(context.Background()); err == nil {
		t.Error("expected error from failing source")
	}

	got, err = CredentialChain(empty).Credential(context.Background())
	if err != nil || !got.IsEmpty() {
		t.Errorf("all-empty chain = (%v, %v), want empty secret", got, err)
	}
}
