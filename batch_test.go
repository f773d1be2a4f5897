package mockup

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestEnhanceBatchPositionalResults(t *testing.T) {
	// Echo each request's prompt back as the image payload so the test can
	// tell which response landed in which slot.
	transport := &stubTransport{respond: func(body []byte) (int, []byte) {
		return http.StatusOK, geminiInline([]byte(promptFromGeminiBody(body)))
	}}
	enhancer, err := New(Options{
		Credential:       "test-key",
		HTTPClient:       &http.Client{Transport: transport},
		BatchConcurrency: 2,
	})
	if err != nil {
		t.Fatalf("new enhancer: %v", err)
	}

	reqs := []Request{
		{Image: ImageSource{Data: productPNG}, Category: CategoryMug},
		{Image: ImageSource{Data: productPNG}, Category: CategoryHoodie},
		{Image: ImageSource{Data: productPNG}, Category: CategoryFaceCap},
	}
	results, err := enhancer.EnhanceBatch(context.Background(), reqs)
	if err != nil {
		t.Fatalf("enhance batch: %v", err)
	}
	if len(results) != len(reqs) {
		t.Fatalf("results len = %d, want %d", len(results), len(reqs))
	}
	wants := []string{"mug", "hoodie", "face cap"}
	for i, want := range wants {
		if results[i] == nil {
			t.Fatalf("result %d is nil", i)
		}
		if !strings.Contains(string(results[i].Image), want) {
			t.Fatalf("result %d does not match request %d: %s", i, i, results[i].Image)
		}
	}
}

func TestEnhanceBatchFirstErrorWins(t *testing.T) {
	transport := &stubTransport{respond: func(body []byte) (int, []byte) {
		return http.StatusOK, geminiInline(productPNG)
	}}
	enhancer, err := New(Options{
		Credential: "test-key",
		HTTPClient: &http.Client{Transport: transport},
	})
	if err != nil {
		t.Fatalf("new enhancer: %v", err)
	}

	reqs := []Request{
		{Image: ImageSource{Data: productPNG}, Category: CategoryMug},
		{Category: CategoryMug}, // empty source fails normalization
	}
	results, err := enhancer.EnhanceBatch(context.Background(), reqs)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected no partial results, got %v", results)
	}
}

func TestEnhanceBatchEmpty(t *testing.T) {
	enhancer, err := New(Options{Credential: "test-key"})
	if err != nil {
		t.Fatalf("new enhancer: %v", err)
	}
	results, err := enhancer.EnhanceBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results len = %d, want 0", len(results))
	}
}
