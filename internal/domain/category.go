package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category enumerates the product types the prompt builder knows how to stage.
type Category string

const (
	CategoryHoodie     Category = "hoodie"
	CategoryFaceCap    Category = "face-cap"
	CategoryShirt      Category = "shirt"
	CategoryMug        Category = "mug"
	CategoryStickerPad Category = "sticker-pad"
	CategoryTankTop    Category = "tank-top"
	CategoryLongSleeve Category = "long-sleeve"
	CategorySweatshirt Category = "sweatshirt"
	CategoryJacket     Category = "jacket"
	CategoryToteBag    Category = "tote-bag"
)

// Categories returns the supported product categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryHoodie,
		CategoryFaceCap,
		CategoryShirt,
		CategoryMug,
		CategoryStickerPad,
		CategoryTankTop,
		CategoryLongSleeve,
		CategorySweatshirt,
		CategoryJacket,
		CategoryToteBag,
	}
}

var displayNames = map[Category]string{
	CategoryHoodie:     "hoodie",
	CategoryFaceCap:    "face cap",
	CategoryShirt:      "shirt",
	CategoryMug:        "mug",
	CategoryStickerPad: "sticker pad",
	CategoryTankTop:    "tank top",
	CategoryLongSleeve: "long sleeve shirt",
	CategorySweatshirt: "sweatshirt",
	CategoryJacket:     "jacket",
	CategoryToteBag:    "tote bag",
}

// DisplayName resolves the category to a human-readable product phrase.
// Unknown categories resolve to "product" so that new tags keep working
// before this table learns about them.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return "product"
}

// Title returns the display name cased for UI labels, e.g. "Face Cap".
func (c Category) Title() string {
	return cases.Title(language.Und).String(c.DisplayName())
}
