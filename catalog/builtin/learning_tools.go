package builtin

import "github.com/jonwraymond/toolcatalog/catalog"

func learningTools() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "ai-dev-dictionary",
			Slug:        "ai-dev-dictionary",
			CategoryID:  "learning",
			Name:        "AI Dev Dictionary",
			Description: "Comprehensive glossary with interactive examples and visual demonstrations.",
			Icon:        "📖",
			Tags:        []string{"learning", "ai terms", "reference"},
			Enabled:     true,
			Users:       3100,
			Featured:    true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
	}
}
