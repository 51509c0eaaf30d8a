// Package core provides the Visionary domain types and the contract that
// image generation backends implement.
//
// The central abstraction is [Generator], a stateless value with two
// operations:
//
//	enhanced, err := gen.Enhance(ctx, "old cafe closing")
//	ref, err := gen.Generate(ctx, core.GenerationRequest{
//	    Prompt:      enhanced,
//	    AspectRatio: core.AspectRatioWide,
//	    HighQuality: false,
//	})
//
// Each call performs exactly one backend round trip. Nothing is retried or
// cached, and concurrent calls do not share mutable state.
//
// # Errors
//
// Generation failures are classified into three kinds, matched with
// [errors.Is]:
//
//   - [ErrCredential]: the backend rejected the credential. Prompt the user to
//     select a key and try again.
//   - [ErrNoImage]: the backend answered but produced no image.
//   - [ErrGenerationFailed]: anything else, with the original message kept.
//
// The transport-level cause is a [*ProviderError] reachable with [errors.As].
//
// # Credentials
//
// Keys are wrapped in [Secret] so they never end up in logs. A
// [CredentialSource] is consulted on every call, so a rotated key takes
// effect on the next request:
//
//	creds := core.CredentialChain(
//	    core.EnvCredential("GEMINI_API_KEY", "API_KEY"),
//	    keystoreSource,
//	)
//
// # Telemetry
//
// Implement [TelemetryHook] to observe request timing and failures. Events
// never carry prompts, image payloads, or keys.
package core
