package image

import (
	"errors"
	"testing"

	"github.com/craftlane/mockup/internal/domain"
)

func TestNewBuildsEverySupportedProvider(t *testing.T) {
	for _, provider := range domain.Providers() {
		gen, err := New(provider, Options{APIKey: "test"})
		if err != nil {
			t.Fatalf("New(%q): %v", provider, err)
		}
		if gen == nil {
			t.Fatalf("New(%q) returned nil generator", provider)
		}
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	gen, err := New(domain.Provider("midjourney"), Options{APIKey: "test"})
	if gen != nil {
		t.Fatalf("expected nil generator, got %T", gen)
	}
	var unsupported *domain.UnsupportedProviderError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedProviderError, got %v", err)
	}
}
