package builtin

import "github.com/jonwraymond/toolcatalog/catalog"

// Creative tools ship inside a disabled category; they stay out of listings
// until the category is switched on.
func creativeTools() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "color-palette",
			Slug:        "color-palette",
			CategoryID:  "creative",
			Name:        "Color Palette Generator",
			Description: "Generate harmonious color palettes and export them as CSS variables.",
			Icon:        "🎨",
			Tags:        []string{"color", "design", "css"},
			Enabled:     true,
			Status:      catalog.StatusBeta,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "gradient-generator",
			Slug:        "gradient-generator",
			CategoryID:  "creative",
			Name:        "Gradient Generator",
			Description: "Design linear and radial CSS gradients visually.",
			Icon:        "🌈",
			Tags:        []string{"gradient", "design", "css"},
			Enabled:     true,
			Status:      catalog.StatusBeta,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
	}
}
