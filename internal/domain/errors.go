package domain

import (
	"fmt"
	"strings"
)

// InvalidInputError reports a reference image that could not be resolved to
// a non-empty byte payload.
type InvalidInputError struct {
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input image: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid input image: %s", e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// MissingCredentialError reports an empty API key. It is returned before any
// network call is attempted.
type MissingCredentialError struct {
	Provider Provider
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential for provider %q: set %s", e.Provider, e.Provider.CredentialEnvVar())
}

// GenerationError reports a failure from the remote generation API and
// carries the remote payload so callers can surface it.
type GenerationError struct {
	Provider   Provider
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: generation failed: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: generation failed: %s", e.Provider, e.Message)
}

// NoImageReturnedError reports a structurally valid provider response that
// contained no image payload.
type NoImageReturnedError struct {
	Provider Provider
}

func (e *NoImageReturnedError) Error() string {
	return fmt.Sprintf("%s: response contained no image data", e.Provider)
}

// UnsupportedProviderError reports a provider tag outside the supported set.
type UnsupportedProviderError struct {
	Provider Provider
}

func (e *UnsupportedProviderError) Error() string {
	names := make([]string, 0, len(Providers()))
	for _, p := range Providers() {
		names = append(names, string(p))
	}
	return fmt.Sprintf("unsupported provider %q (supported: %s)", e.Provider, strings.Join(names, ", "))
}
