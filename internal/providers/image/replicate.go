package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/craftlane/mockup/internal/domain"
	"github.com/craftlane/mockup/internal/infra"
)

// ReplicateGenerator submits a hosted diffusion prediction and polls until
// the job settles. The loop is bounded twice: by a poll budget and by a
// wall-clock deadline, whichever trips first.
type ReplicateGenerator struct {
	apiKey       string
	baseURL      string
	model        string
	httpClient   *http.Client
	logger       *infra.Logger
	pollInterval time.Duration
	maxPolls     int
	pollTimeout  time.Duration
}

var _ Generator = (*ReplicateGenerator)(nil)

// NewReplicateGenerator constructs the hosted-diffusion-polling adapter.
func NewReplicateGenerator(opts Options) *ReplicateGenerator {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.replicate.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "black-forest-labs/flux-dev"
	}
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	maxPolls := opts.MaxPolls
	if maxPolls <= 0 {
		maxPolls = 60
	}
	pollTimeout := opts.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Minute
	}
	return &ReplicateGenerator{
		apiKey:       strings.TrimSpace(opts.APIKey),
		baseURL:      baseURL,
		model:        model,
		httpClient:   httpClientOrDefault(opts),
		logger:       loggerOrDiscard(opts),
		pollInterval: pollInterval,
		maxPolls:     maxPolls,
		pollTimeout:  pollTimeout,
	}
}

type replicateInput struct {
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}

type replicateRequest struct {
	Input replicateInput `json:"input"`
}

type replicatePrediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error"`
}

type replicateErrorResponse struct {
	Detail string `json:"detail"`
}

// Generate submits the prediction, polls it to a terminal status, and
// downloads the produced image.
func (r *ReplicateGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if r.apiKey == "" {
		return nil, &domain.MissingCredentialError{Provider: domain.ProviderHostedDiffusionPolling}
	}

	pred, err := r.submit(ctx, req)
	if err != nil {
		return nil, err
	}

	pollCtx, cancel := context.WithTimeout(ctx, r.pollTimeout)
	defer cancel()

	polls := 0
	for pred.Status == "starting" || pred.Status == "processing" {
		if polls >= r.maxPolls {
			return nil, &domain.GenerationError{
				Provider: domain.ProviderHostedDiffusionPolling,
				Message:  fmt.Sprintf("prediction %s still %s after %d polls", pred.ID, pred.Status, polls),
			}
		}
		select {
		case <-pollCtx.Done():
			return nil, fmt.Errorf("replicate: poll prediction %s: %w", pred.ID, pollCtx.Err())
		case <-time.After(r.pollInterval):
		}
		pred, err = r.poll(pollCtx, pred.ID)
		if err != nil {
			return nil, err
		}
		polls++
	}

	if pred.Status != "succeeded" {
		message := strings.TrimSpace(pred.Error)
		if message == "" {
			message = fmt.Sprintf("prediction %s ended with status %q", pred.ID, pred.Status)
		}
		return nil, &domain.GenerationError{Provider: domain.ProviderHostedDiffusionPolling, Message: message}
	}

	outputURL := firstOutputURL(pred.Output)
	if outputURL == "" {
		return nil, &domain.NoImageReturnedError{Provider: domain.ProviderHostedDiffusionPolling}
	}
	data, err := r.download(ctx, outputURL)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().
		Str("model", r.model).
		Str("request_id", req.RequestID).
		Str("prediction_id", pred.ID).
		Int("polls", polls).
		Int("bytes", len(data)).
		Msg("replicate: generated mockup image")
	return data, nil
}

func (r *ReplicateGenerator) submit(ctx context.Context, req Request) (replicatePrediction, error) {
	payload := replicateRequest{Input: replicateInput{
		Prompt: req.Prompt,
		Image:  dataURI(req.Image),
	}}
	body, err := json.Marshal(payload)
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: encode request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s/predictions", r.baseURL, r.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return r.doPrediction(httpReq)
}

func (r *ReplicateGenerator) poll(ctx context.Context, id string) (replicatePrediction, error) {
	endpoint := fmt.Sprintf("%s/predictions/%s", r.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: build poll request: %w", err)
	}
	return r.doPrediction(httpReq)
}

func (r *ReplicateGenerator) doPrediction(httpReq *http.Request) (replicatePrediction, error) {
	httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(raw))
		var detail replicateErrorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
			message = detail.Detail
		}
		return replicatePrediction{}, &domain.GenerationError{
			Provider:   domain.ProviderHostedDiffusionPolling,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	var pred replicatePrediction
	if err := json.Unmarshal(raw, &pred); err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: decode response: %w", err)
	}
	return pred, nil
}

func (r *ReplicateGenerator) download(ctx context.Context, imageURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("replicate: build download request: %w", err)
	}
	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("replicate: download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, &domain.GenerationError{
			Provider:   domain.ProviderHostedDiffusionPolling,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("download %s failed", imageURL),
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("replicate: read image: %w", err)
	}
	return data, nil
}

// firstOutputURL handles both output shapes the API uses: a single URL
// string or an array of URL strings.
func firstOutputURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, u := range many {
			if s := strings.TrimSpace(u); s != "" {
				return s
			}
		}
		return ""
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return strings.TrimSpace(one)
	}
	return ""
}
