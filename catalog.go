package mockup

import (
	"github.com/craftlane/mockup/internal/domain"
	"github.com/craftlane/mockup/internal/imageio"
)

// Category identifies a product type. Unknown values are accepted and fall
// back to a generic presentation, see Category.DisplayName.
type Category = domain.Category

const (
	CategoryHoodie     = domain.CategoryHoodie
	CategoryFaceCap    = domain.CategoryFaceCap
	CategoryShirt      = domain.CategoryShirt
	CategoryMug        = domain.CategoryMug
	CategoryStickerPad = domain.CategoryStickerPad
	CategoryTankTop    = domain.CategoryTankTop
	CategoryLongSleeve = domain.CategoryLongSleeve
	CategorySweatshirt = domain.CategorySweatshirt
	CategoryJacket     = domain.CategoryJacket
	CategoryToteBag    = domain.CategoryToteBag
)

// Provider identifies an image generation backend.
type Provider = domain.Provider

const (
	ProviderDefaultGenerator       = domain.ProviderDefaultGenerator
	ProviderVisionPlusGeneration   = domain.ProviderVisionPlusGeneration
	ProviderImageToImageDiffusion  = domain.ProviderImageToImageDiffusion
	ProviderHostedDiffusionPolling = domain.ProviderHostedDiffusionPolling
)

// ImageSource carries the reference photo as raw bytes or a textual
// reference (data URI, bare base64 payload, or file path).
type ImageSource = imageio.Source

// Categories returns the supported product categories in a stable order.
func Categories() []Category { return domain.Categories() }

// Providers returns the supported provider identities in a stable order.
func Providers() []Provider { return domain.Providers() }
