package keystore

import (
	"errors"
	"os"
)

// MasterKeyEnv names the environment variable that overrides the machine
// master key.
const MasterKeyEnv = "VISIONARY_MASTER_KEY"

// MasterKeySource supplies the secret the file encryption key is derived from.
type MasterKeySource interface {
	MasterKey() ([]byte, error)
}

// MasterKeyFunc adapts a function to MasterKeySource.
type MasterKeyFunc func() ([]byte, error)

// MasterKey calls f.
func (f MasterKeyFunc) MasterKey() ([]byte, error) {
	return f()
}

// StaticMasterKey returns a source that always yields key.
func StaticMasterKey(key []byte) MasterKeySource {
	return MasterKeyFunc(func() ([]byte, error) {
		if len(key) == 0 {
			return nil, errors.New("empty master key")
		}
		return key, nil
	})
}

// EnvMasterKey reads the master key from the named variable.
func EnvMasterKey(name string) MasterKeySource {
	return MasterKeyFunc(func() ([]byte, error) {
		v := os.Getenv(name)
		if v == "" {
			return nil, errors.New(name + " is not set")
		}
		return []byte(v), nil
	})
}

// MachineMasterKey derives a master key from the hostname and user name.
// It keeps keys off disk in plain text but is predictable to anyone with
// access to the same account; set VISIONARY_MASTER_KEY for stronger
// protection.
func MachineMasterKey() MasterKeySource {
	return MasterKeyFunc(func() ([]byte, error) {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME")
		}
		return []byte(hostname + ":" + username + ":visionary-keystore"), nil
	})
}

// DefaultMasterKeySource prefers VISIONARY_MASTER_KEY and falls back to the
// machine key.
func DefaultMasterKeySource() MasterKeySource {
	env := EnvMasterKey(MasterKeyEnv)
	machine := MachineMasterKey()
	return MasterKeyFunc(func() ([]byte, error) {
		if key, err := env.MasterKey(); err == nil {
			return key, nil
		}
		return machine.MasterKey()
	})
}
