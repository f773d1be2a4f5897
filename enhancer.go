// Package mockup turns raw product photos into boutique-style mockup images
// by delegating generation to one of several AI image backends behind a
// single interface. The provider identity and its credential are bound once
// at construction; each call then normalizes the input, builds a
// deterministic prompt, and returns the generated image with its sniffed
// MIME type.
package mockup

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/craftlane/mockup/internal/imageio"
	"github.com/craftlane/mockup/internal/infra"
	"github.com/craftlane/mockup/internal/prompt"
	"github.com/craftlane/mockup/internal/providers/image"
)

// Options configures an Enhancer. Credential and Provider are bound for the
// Enhancer's lifetime; the rest tunes transport, logging, and polling, with
// zero values falling back to per-provider defaults.
type Options struct {
	Credential       string
	Provider         Provider
	BaseURL          string
	Model            string
	VisionModel      string
	HTTPClient       *http.Client
	Logger           *zerolog.Logger
	Timeout          time.Duration
	PollInterval     time.Duration
	MaxPolls         int
	PollTimeout      time.Duration
	BatchConcurrency int
}

// Request describes one enhancement call.
type Request struct {
	Image    ImageSource
	Category Category
	Color    string
}

// Result is the produced mockup.
type Result struct {
	Image    []byte
	MIMEType string
}

// Enhancer generates boutique mockups through the provider bound at
// construction. Safe for concurrent use.
type Enhancer struct {
	provider         Provider
	generator        image.Generator
	logger           *infra.Logger
	batchConcurrency int
}

// New validates the provider identity and binds it together with the
// credential. Construction performs no network I/O; a missing credential
// surfaces on the first generation call.
func New(opts Options) (*Enhancer, error) {
	provider := opts.Provider
	if provider == "" {
		provider = ProviderDefaultGenerator
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	generator, err := image.New(provider, image.Options{
		APIKey:         opts.Credential,
		BaseURL:        opts.BaseURL,
		Model:          opts.Model,
		VisionModel:    opts.VisionModel,
		HTTPClient:     opts.HTTPClient,
		Logger:         logger,
		RequestTimeout: opts.Timeout,
		PollInterval:   opts.PollInterval,
		MaxPolls:       opts.MaxPolls,
		PollTimeout:    opts.PollTimeout,
	})
	if err != nil {
		return nil, err
	}
	concurrency := opts.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Enhancer{
		provider:         provider,
		generator:        generator,
		logger:           logger,
		batchConcurrency: concurrency,
	}, nil
}

// EnhanceImage runs one enhancement: normalize the input, build the prompt,
// call the bound provider, and sniff the returned payload's MIME type. The
// design preservation instruction is always on. Errors propagate unchanged;
// there is no retry and no fallback provider.
func (e *Enhancer) EnhanceImage(ctx context.Context, req Request) (*Result, error) {
	requestID := uuid.NewString()

	input, err := imageio.Normalize(req.Image)
	if err != nil {
		return nil, err
	}
	instruction := prompt.Build(req.Category, req.Color, true)

	e.logger.Debug().
		Str("request_id", requestID).
		Str("provider", string(e.provider)).
		Str("category", string(req.Category)).
		Int("input_bytes", len(input)).
		Msg("mockup: starting enhancement")

	generated, err := e.generator.Generate(ctx, image.Request{
		RequestID: requestID,
		Prompt:    instruction,
		Image:     input,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Image: generated, MIMEType: imageio.DetectMIME(generated)}
	e.logger.Debug().
		Str("request_id", requestID).
		Str("mime_type", result.MIMEType).
		Int("output_bytes", len(result.Image)).
		Msg("mockup: enhancement complete")
	return result, nil
}
