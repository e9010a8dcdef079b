package builtin

import "github.com/jonwraymond/toolcatalog/catalog"

func quickTools() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "pc-optimizer",
			Slug:        "pc-optimizer",
			CategoryID:  "quick-tools",
			Name:        "PC Optimizer Advisor",
			Description: "Free up storage space! Analyze Program Files to identify removal candidates. 100% local processing for privacy.",
			Icon:        "💻",
			Tags:        []string{"windows", "performance", "cleanup"},
			Enabled:     true,
			Users:       2100,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "blurtap",
			Slug:        "blurtap",
			CategoryID:  "quick-tools",
			Name:        "BlurTap",
			Description: "Mask sensitive information in images with one click. Perfect for screenshots and documents.",
			Icon:        "🔐",
			Tags:        []string{"privacy", "images", "security"},
			Enabled:     true,
			Users:       5200,
			Featured:    true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "image-grid-merger",
			Slug:        "image-grid-merger",
			CategoryID:  "quick-tools",
			Name:        "Image Grid Merger",
			Description: "Create numbered image grids instantly. Merge multiple images into organized layouts with automatic numbering.",
			Icon:        "🖼️",
			Tags:        []string{"image", "grid", "merger", "collage", "layout", "privacy"},
			Enabled:     true,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
			UpdatedAt:   month(2025, 1),
		},
		{
			ID:          "pdf-tools",
			Slug:        "pdf-tools",
			CategoryID:  "quick-tools",
			Name:        "PDF Tools - Pick 3",
			Description: "Choose 3 essential PDF tools and use them forever. Rotate, merge, split, compress - all in your browser. 100% privacy.",
			Icon:        "📄",
			Tags:        []string{"pdf", "documents", "privacy"},
			Enabled:     true,
			Users:       3800,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "json-format",
			Slug:        "json-format",
			CategoryID:  "quick-tools",
			Name:        "JSON Beautify",
			Description: "Format, validate, and minify JSON data instantly. Perfect for API testing.",
			Icon:        "{ }",
			Tags:        []string{"data", "format", "quick"},
			Enabled:     true,
			Users:       1500,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "text-case",
			Slug:        "text-case",
			CategoryID:  "quick-tools",
			Name:        "Text Case Converter",
			Description: "Convert text between uppercase, lowercase, title case, and more formats instantly.",
			Icon:        "📝",
			Tags:        []string{"text", "format", "convert"},
			Enabled:     true,
			Users:       890,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "pdf-to-data",
			Slug:        "pdf-to-data",
			CategoryID:  "quick-tools",
			Name:        "PDF to CSV/Excel",
			Description: "Extract tables and structured data from PDFs. AI-powered conversion to CSV or Excel format.",
			Icon:        "📊",
			Tags:        []string{"pdf", "csv", "excel", "data", "ai", "extraction"},
			Enabled:     true,
			Users:       1800,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingServer,
			UpdatedAt:   month(2025, 1),
		},
		{
			ID:          "qr-code",
			Slug:        "qr-code",
			CategoryID:  "quick-tools",
			Name:        "QR Code Generator",
			Description: "Generate QR codes for links, text and Wi-Fi credentials. Download as PNG or SVG.",
			Icon:        "🔳",
			Tags:        []string{"qr", "generator", "image"},
			Enabled:     true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "unit-converter",
			Slug:        "unit-converter",
			CategoryID:  "quick-tools",
			Name:        "Unit Converter",
			Description: "Convert length, weight, temperature and more between metric and imperial units.",
			Icon:        "📏",
			Tags:        []string{"convert", "units", "calculator"},
			Enabled:     true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
	}
}
