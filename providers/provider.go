// Package providers contains image generation backends for Visionary.
//
// Each backend lives in its own subpackage (e.g., providers/gemini) and
// implements core.Generator. Subpackages register a factory in init, so a
// blank import is enough to make a backend available by name:
//
//	import _ "github.com/petal-labs/visionary/providers/gemini"
//
//	gen, err := providers.Create("gemini", creds, providers.Config{})
//
// # Contract
//
// Generators MUST be safe for concurrent calls, MUST read the credential on
// every call, and MUST NOT retry. Every error they return matches one of
// core.ErrCredential, core.ErrNoImage or core.ErrGenerationFailed.
package providers
