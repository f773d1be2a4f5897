package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/craftlane/mockup/internal/domain"
	"github.com/craftlane/mockup/internal/infra"
)

// imageToImageStrength balances how far the diffusion may drift from the
// reference photo. 0.7 restages the scene while the printed design stays
// recognizable.
const imageToImageStrength = "0.7"

// StabilityGenerator drives the Stability AI image-to-image endpoint: one
// multipart upload, raw image bytes back in the response body.
type StabilityGenerator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

var _ Generator = (*StabilityGenerator)(nil)

// NewStabilityGenerator constructs the image-to-image diffusion adapter.
func NewStabilityGenerator(opts Options) *StabilityGenerator {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.stability.ai"
	}
	return &StabilityGenerator{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		httpClient: httpClientOrDefault(opts),
		logger:     loggerOrDiscard(opts),
	}
}

type stabilityErrorResponse struct {
	Name   string   `json:"name"`
	Errors []string `json:"errors"`
}

// Generate uploads the reference photo and prompt in one multipart call.
func (s *StabilityGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if s.apiKey == "" {
		return nil, &domain.MissingCredentialError{Provider: domain.ProviderImageToImageDiffusion}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "image.png")
	if err != nil {
		return nil, fmt.Errorf("stability: build form: %w", err)
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, fmt.Errorf("stability: write image field: %w", err)
	}
	if err := writer.WriteField("prompt", req.Prompt); err != nil {
		return nil, fmt.Errorf("stability: write prompt field: %w", err)
	}
	if err := writer.WriteField("mode", "image-to-image"); err != nil {
		return nil, fmt.Errorf("stability: write mode field: %w", err)
	}
	if err := writer.WriteField("strength", imageToImageStrength); err != nil {
		return nil, fmt.Errorf("stability: write strength field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("stability: close form: %w", err)
	}

	endpoint := s.baseURL + "/v2beta/stable-image/generate/sd3"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("stability: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Accept", "image/*")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stability: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stability: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(raw))
		var detail stabilityErrorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && len(detail.Errors) > 0 {
			message = strings.Join(detail.Errors, "; ")
		}
		return nil, &domain.GenerationError{
			Provider:   domain.ProviderImageToImageDiffusion,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}
	if len(raw) == 0 {
		return nil, &domain.NoImageReturnedError{Provider: domain.ProviderImageToImageDiffusion}
	}
	s.logger.Debug().
		Str("request_id", req.RequestID).
		Int("bytes", len(raw)).
		Msg("stability: generated mockup image")
	return raw, nil
}
