package domain

import (
	"strings"
	"testing"
)

func TestCategoriesStableOrder(t *testing.T) {
	got := Categories()
	if len(got) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(got))
	}
	if got[0] != CategoryHoodie || got[9] != CategoryToteBag {
		t.Fatalf("unexpected category order: %v", got)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[Category]string{
		CategoryHoodie:     "hoodie",
		CategoryFaceCap:    "face cap",
		CategoryStickerPad: "sticker pad",
		CategoryToteBag:    "tote bag",
	}
	for category, want := range cases {
		if got := category.DisplayName(); got != want {
			t.Fatalf("DisplayName(%q) = %q, want %q", category, got, want)
		}
	}
	if got := Category("surfboard").DisplayName(); got != "product" {
		t.Fatalf("DisplayName(unknown) = %q, want %q", got, "product")
	}
	if got := Category("").DisplayName(); got != "product" {
		t.Fatalf("DisplayName(empty) = %q, want %q", got, "product")
	}
}

func TestTitle(t *testing.T) {
	if got := CategoryFaceCap.Title(); got != "Face Cap" {
		t.Fatalf("Title(face-cap) = %q", got)
	}
	if got := Category("surfboard").Title(); got != "Product" {
		t.Fatalf("Title(unknown) = %q", got)
	}
}

func TestCredentialEnvVar(t *testing.T) {
	cases := map[Provider]string{
		ProviderDefaultGenerator:       "GEMINI_API_KEY",
		ProviderVisionPlusGeneration:   "OPENAI_API_KEY",
		ProviderImageToImageDiffusion:  "STABILITY_API_KEY",
		ProviderHostedDiffusionPolling: "REPLICATE_API_TOKEN",
	}
	for provider, want := range cases {
		if got := provider.CredentialEnvVar(); got != want {
			t.Fatalf("CredentialEnvVar(%q) = %q, want %q", provider, got, want)
		}
	}
	if got := Provider("other").CredentialEnvVar(); got != "" {
		t.Fatalf("CredentialEnvVar(unknown) = %q, want empty", got)
	}
}

func TestMissingCredentialErrorNamesEnvVar(t *testing.T) {
	err := &MissingCredentialError{Provider: ProviderHostedDiffusionPolling}
	if !strings.Contains(err.Error(), "REPLICATE_API_TOKEN") {
		t.Fatalf("error does not name env var: %s", err)
	}
}

func TestGenerationErrorCarriesRemotePayload(t *testing.T) {
	err := &GenerationError{Provider: ProviderDefaultGenerator, StatusCode: 429, Message: "quota exhausted"}
	msg := err.Error()
	if !strings.Contains(msg, "429") || !strings.Contains(msg, "quota exhausted") {
		t.Fatalf("error missing status or payload: %s", msg)
	}
}

func TestUnsupportedProviderErrorListsSupportedSet(t *testing.T) {
	err := &UnsupportedProviderError{Provider: "midjourney"}
	msg := err.Error()
	for _, p := range Providers() {
		if !strings.Contains(msg, string(p)) {
			t.Fatalf("error missing supported provider %q: %s", p, msg)
		}
	}
	if !strings.Contains(msg, "midjourney") {
		t.Fatalf("error missing offending tag: %s", msg)
	}
}
