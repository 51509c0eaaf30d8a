package core

// Secret wraps an API key so it cannot leak through formatting or
// serialization. Use Expose to read the value when building a request.
//
//	key := NewSecret("AIza...")
//	fmt.Println(key)  // [REDACTED]
//	key.Expose()      // "AIza..."
type Secret struct {
	value string
}

const redacted = "[REDACTED]"

// NewSecret creates a new Secret from a string value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String implements fmt.Stringer with a redacted placeholder.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer with a redacted placeholder.
func (s Secret) GoString() string {
	return "core.Secret{" + redacted + "}"
}

// MarshalJSON returns a redacted JSON string.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// MarshalText returns a redacted text representation, covering YAML too.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Expose returns the actual secret value.
// Do not log or serialize the result.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty returns true if the secret value is empty.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
