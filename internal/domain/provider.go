package domain

// Provider identifies one of the supported image generation backends.
type Provider string

const (
	// ProviderDefaultGenerator sends a single multimodal generateContent
	// request to Google Gemini and reads the image back inline.
	ProviderDefaultGenerator Provider = "default-generator"
	// ProviderVisionPlusGeneration describes the reference photo with an
	// OpenAI vision model, then generates from the enriched prompt.
	ProviderVisionPlusGeneration Provider = "vision-plus-generation"
	// ProviderImageToImageDiffusion runs Stability AI image-to-image in a
	// single multipart call that returns raw image bytes.
	ProviderImageToImageDiffusion Provider = "image-to-image-diffusion"
	// ProviderHostedDiffusionPolling submits a Replicate prediction and
	// polls until the hosted job finishes.
	ProviderHostedDiffusionPolling Provider = "hosted-diffusion-polling"
)

// Providers returns the supported provider identities in a stable order.
func Providers() []Provider {
	return []Provider{
		ProviderDefaultGenerator,
		ProviderVisionPlusGeneration,
		ProviderImageToImageDiffusion,
		ProviderHostedDiffusionPolling,
	}
}

// CredentialEnvVar names the environment variable the provider's API key is
// read from. Error messages and FromEnv both rely on this single mapping.
func (p Provider) CredentialEnvVar() string {
	switch p {
	case ProviderDefaultGenerator:
		return "GEMINI_API_KEY"
	case ProviderVisionPlusGeneration:
		return "OPENAI_API_KEY"
	case ProviderImageToImageDiffusion:
		return "STABILITY_API_KEY"
	case ProviderHostedDiffusionPolling:
		return "REPLICATE_API_TOKEN"
	default:
		return ""
	}
}
