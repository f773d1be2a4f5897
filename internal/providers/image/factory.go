package image

import (
	"github.com/craftlane/mockup/internal/domain"
)

// New constructs the generator for a provider identity. The mapping is
// closed: identities outside the supported set fail with
// UnsupportedProviderError and no adapter is built.
func New(provider domain.Provider, opts Options) (Generator, error) {
	switch provider {
	case domain.ProviderDefaultGenerator:
		return NewGeminiGenerator(opts), nil
	case domain.ProviderVisionPlusGeneration:
		return NewOpenAIGenerator(opts), nil
	case domain.ProviderImageToImageDiffusion:
		return NewStabilityGenerator(opts), nil
	case domain.ProviderHostedDiffusionPolling:
		return NewReplicateGenerator(opts), nil
	default:
		return nil, &domain.UnsupportedProviderError{Provider: provider}
	}
}
