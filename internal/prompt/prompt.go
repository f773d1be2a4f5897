package prompt

import (
	"fmt"
	"strings"

	"github.com/craftlane/mockup/internal/domain"
)

// preserveClause is the strongest instruction in the prompt: without it the
// generation backends routinely redraw or erase the artwork already printed
// on the product.
const preserveClause = "Keep every graphic, logo, artwork, and piece of text already printed on the product exactly as it appears in the reference photo. Do not redraw, restyle, distort, or remove any part of the existing design. This image will be used to sell the real product, so the printed design must match the reference precisely."

// Build composes the natural-language instruction for one product mockup.
// Pure and deterministic: identical inputs yield byte-identical output.
func Build(category domain.Category, color string, preserveDesign bool) string {
	product := category.DisplayName()

	var paragraphs []string
	paragraphs = append(paragraphs, fmt.Sprintf("Create a professional boutique-style product photograph of this %s for an online store.", product))
	paragraphs = append(paragraphs, scene(category, product))

	color = strings.TrimSpace(color)
	if color != "" {
		paragraphs = append(paragraphs, fmt.Sprintf("The %s is in %s color. Present it exactly as it would look in that color under soft, even studio lighting.", product, color))
	}

	if preserveDesign {
		paragraphs = append(paragraphs, preserveClause)
	}

	if color != "" {
		paragraphs = append(paragraphs, fmt.Sprintf("The color of the %s must stay exactly %s across the whole image, with no tint shifts or recoloring.", product, color))
	}

	paragraphs = append(paragraphs, "Render in high resolution with sharp focus, soft natural shadows, and clean commercial-grade post-processing.")

	return strings.Join(paragraphs, "\n\n")
}

// scene stages the product per category. Categories this table does not know
// fall back to the generic studio presentation.
func scene(category domain.Category, product string) string {
	switch category {
	case domain.CategoryHoodie, domain.CategoryShirt, domain.CategoryTankTop,
		domain.CategoryLongSleeve, domain.CategorySweatshirt, domain.CategoryJacket:
		return fmt.Sprintf("Display the %s on a wooden hanger against a clean boutique wall, tilted at a slight angle so the front of the garment faces the camera.", product)
	case domain.CategoryFaceCap:
		return fmt.Sprintf("Place the %s on a minimalist display stand at eye level, with the front panel and brim clearly visible.", product)
	case domain.CategoryMug:
		return fmt.Sprintf("Set the %s on a clean tabletop surface with the printed side turned toward the camera.", product)
	case domain.CategoryStickerPad:
		return fmt.Sprintf("Lay the %s flat on a tidy work desk beside a few everyday stationery items, photographed from a slight overhead angle.", product)
	case domain.CategoryToteBag:
		return fmt.Sprintf("Hang the %s from a wall hook, or rest it upright on a clean surface, with the printed side facing the camera.", product)
	default:
		return fmt.Sprintf("Present the %s against a neutral studio backdrop with balanced, soft lighting.", product)
	}
}
