package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/craftlane/mockup/internal/domain"
	"github.com/craftlane/mockup/internal/infra"
)

// visionInstruction asks the chat model for a faithful inventory of the
// artwork on the product so the generation call can be told to keep it.
const visionInstruction = "Describe the design printed on this product: every graphic, logo, piece of text, and color, exactly as they appear. Answer in one short paragraph."

// OpenAIGenerator chains two OpenAI calls: a vision chat completion that
// describes the existing design, then an image generation whose prompt
// demands those elements be preserved. The generation API cannot take a
// reference photo directly, so the description is the bridge.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	visionModel string
	logger      *infra.Logger
	hasKey      bool
}

var _ Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator constructs the vision-plus-generation adapter.
func NewOpenAIGenerator(opts Options) *OpenAIGenerator {
	apiKey := strings.TrimSpace(opts.APIKey)
	config := openai.DefaultConfig(apiKey)
	if baseURL := strings.TrimRight(opts.BaseURL, "/"); baseURL != "" {
		config.BaseURL = baseURL + "/v1"
	}
	config.HTTPClient = httpClientOrDefault(opts)

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "dall-e-3"
	}
	visionModel := strings.TrimSpace(opts.VisionModel)
	if visionModel == "" {
		visionModel = "gpt-4o"
	}
	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		visionModel: visionModel,
		logger:      loggerOrDiscard(opts),
		hasKey:      apiKey != "",
	}
}

// Generate describes the reference photo, splices the description into the
// prompt, and generates the mockup from the enriched prompt.
func (o *OpenAIGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if !o.hasKey {
		return nil, &domain.MissingCredentialError{Provider: domain.ProviderVisionPlusGeneration}
	}

	description, err := o.describeDesign(ctx, req.Image)
	if err != nil {
		return nil, err
	}
	prompt := req.Prompt
	if description != "" {
		prompt = fmt.Sprintf("%s\n\nThe existing design on the product consists of: %s\n\nThe generated image must preserve exactly these elements.", prompt, description)
	}

	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Model:          o.model,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, o.wrapErr("generate image", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, &domain.NoImageReturnedError{Provider: domain.ProviderVisionPlusGeneration}
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai: decode image payload: %w", err)
	}
	o.logger.Debug().
		Str("model", o.model).
		Str("vision_model", o.visionModel).
		Str("request_id", req.RequestID).
		Int("bytes", len(data)).
		Msg("openai: generated mockup image")
	return data, nil
}

func (o *OpenAIGenerator) describeDesign(ctx context.Context, img []byte) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.visionModel,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: visionInstruction},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURI(img)}},
			},
		}},
		MaxTokens: 300,
	})
	if err != nil {
		return "", o.wrapErr("describe reference image", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty vision response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAIGenerator) wrapErr(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &domain.GenerationError{
			Provider:   domain.ProviderVisionPlusGeneration,
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
		}
	}
	return fmt.Errorf("openai: %s: %w", op, err)
}
