package mockup

import "github.com/craftlane/mockup/internal/domain"

// Error types are aliased from the internal domain package so callers can
// match them with errors.As without importing internal paths.
type (
	InvalidInputError        = domain.InvalidInputError
	MissingCredentialError   = domain.MissingCredentialError
	GenerationError          = domain.GenerationError
	NoImageReturnedError     = domain.NoImageReturnedError
	UnsupportedProviderError = domain.UnsupportedProviderError
)
