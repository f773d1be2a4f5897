// Package image adapts the third-party generation backends behind one
// Generator contract. Each adapter speaks its provider's wire protocol and
// returns the produced mockup as raw bytes.
package image

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/craftlane/mockup/internal/imageio"
	"github.com/craftlane/mockup/internal/infra"
)

// Request carries one generation call: the assembled prompt and the
// normalized reference photo.
type Request struct {
	RequestID string
	Prompt    string
	Image     []byte
}

// Generator is the contract implemented by all image providers.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// Options configures a generator. Zero values fall back to per-provider
// defaults; HTTPClient and Logger are injectable for tests.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	VisionModel    string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
	PollInterval   time.Duration
	MaxPolls       int
	PollTimeout    time.Duration
}

func httpClientOrDefault(opts Options) *http.Client {
	if opts.HTTPClient != nil {
		return opts.HTTPClient
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func loggerOrDiscard(opts Options) *infra.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	discard := zerolog.New(io.Discard)
	l := infra.Logger(discard)
	return &l
}

// dataURI encodes the image as a data URI with its sniffed MIME type.
func dataURI(img []byte) string {
	return "data:" + imageio.DetectMIME(img) + ";base64," + base64.StdEncoding.EncodeToString(img)
}
