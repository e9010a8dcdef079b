// Package builtin holds the compiled-in catalog served when no catalog file
// is configured. Each category's tools live in their own file.
package builtin

import (
	"time"

	"github.com/jonwraymond/toolcatalog/catalog"
)

// Catalog returns a fresh copy of the compiled-in catalog. Callers may keep
// or modify the result without affecting later calls.
func Catalog() catalog.Catalog {
	var tools []catalog.Tool
	tools = append(tools, quickTools()...)
	tools = append(tools, devTools()...)
	tools = append(tools, learningTools()...)
	tools = append(tools, studyTools()...)
	tools = append(tools, businessTools()...)
	tools = append(tools, creativeTools()...)
	return catalog.Catalog{
		Categories: categories(),
		Tools:      tools,
	}
}

func categories() []catalog.Category {
	return []catalog.Category{
		{
			ID:          "quick-tools",
			Name:        "Quick Tools",
			ShortName:   "Quick",
			Tagline:     "One-click solutions",
			Description: "Instant tools for everyday tasks. No setup, no account needed.",
			Icon:        "⚡",
			Enabled:     true,
			Order:       1,
		},
		{
			ID:          "dev-tools",
			Name:        "Developer Tools",
			ShortName:   "Dev",
			Tagline:     "Debug & analyze code",
			Description: "Professional tools for debugging, analyzing, and optimizing code.",
			Icon:        "🔧",
			Enabled:     true,
			Order:       2,
		},
		{
			ID:          "learning",
			Name:        "Learning Hub",
			ShortName:   "Learning",
			Tagline:     "Understand concepts",
			Description: "Learn and understand technical concepts with interactive examples.",
			Icon:        "📚",
			Enabled:     true,
			Order:       3,
		},
		{
			ID:          "study-tools",
			Name:        "Study Tools",
			ShortName:   "Study",
			Tagline:     "AI-powered learning",
			Description: "Smart study assistance with AI. Summarize, analyze, and learn faster.",
			Icon:        "🎓",
			Badge:       catalog.BadgeNew,
			Enabled:     true,
			Order:       4,
		},
		{
			ID:          "business",
			Name:        "Business Tools",
			ShortName:   "Business",
			Tagline:     "Professional suite",
			Description: "Professional tools for business productivity and automation.",
			Icon:        "💼",
			Badge:       catalog.BadgeNew,
			Enabled:     true,
			Order:       5,
		},
		{
			ID:          "creative",
			Name:        "Creative Tools",
			ShortName:   "Creative",
			Tagline:     "Design & create",
			Description: "Creative tools for designers and content creators.",
			Icon:        "🎨",
			Badge:       catalog.BadgeBeta,
			Enabled:     false,
			Order:       6,
		},
		{
			ID:          "ai-powered",
			Name:        "AI Tools",
			ShortName:   "AI",
			Tagline:     "Smart automation",
			Description: "AI-powered tools for automation and smart processing.",
			Icon:        "🤖",
			Badge:       catalog.BadgeNew,
			Enabled:     false,
			Order:       7,
		},
		{
			ID:          "security",
			Name:        "Security Tools",
			ShortName:   "Security",
			Tagline:     "Privacy & protection",
			Description: "Tools for privacy, security, and data protection.",
			Icon:        "🔒",
			Badge:       catalog.BadgeComingSoon,
			Enabled:     false,
			Order:       8,
		},
	}
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}
