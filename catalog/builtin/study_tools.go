package builtin

import "github.com/jonwraymond/toolcatalog/catalog"

func studyTools() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "pdf-summarizer",
			Slug:        "pdf-summarizer",
			CategoryID:  "study-tools",
			Name:        "PDF Summarizer",
			Description: "AI-powered PDF summary generator for quick study reviews",
			Icon:        "📄",
			Tags:        []string{"pdf", "summary", "study", "ai"},
			Enabled:     true,
			Users:       1200,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingHybrid,
		},
		{
			ID:          "flashcard-maker",
			Slug:        "flashcard-maker",
			CategoryID:  "study-tools",
			Name:        "Flashcard Maker",
			Description: "Create smart flashcards from any text or PDF",
			Icon:        "🎴",
			Tags:        []string{"flashcards", "study", "memory", "learning"},
			Enabled:     false,
			Users:       800,
			New:         true,
			Status:      catalog.StatusDevelopment,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "study-planner",
			Slug:        "study-planner",
			CategoryID:  "study-tools",
			Name:        "Study Planner",
			Description: "Generate personalized study schedules based on your goals",
			Icon:        "📅",
			Tags:        []string{"planning", "schedule", "productivity", "study"},
			Enabled:     false,
			Status:      catalog.StatusComing,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "debate-trainer",
			Slug:        "debate-trainer",
			CategoryID:  "study-tools",
			Name:        "Debate Trainer",
			Description: "Practice argumentation skills with AI opponents. Get scored feedback on logic, persuasiveness, and structure.",
			Icon:        "⚔️",
			Tags:        []string{"debate", "argumentation", "critical thinking", "ai", "practice"},
			Enabled:     true,
			Users:       500,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingServer,
			UpdatedAt:   month(2025, 1),
		},
		{
			ID:          "token-compressor",
			Slug:        "token-compressor",
			CategoryID:  "study-tools",
			Name:        "AI Token Compressor",
			Description: "Optimize and compress files for efficient AI sharing with token visualization. Reduce API costs by up to 70%.",
			Icon:        "🗜️",
			Tags:        []string{"token", "compression", "ai", "optimization", "file-processing", "cost-reduction"},
			Enabled:     true,
			Users:       2500,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
			UpdatedAt:   month(2025, 1),
		},
		{
			ID:          "ai-summarizer",
			Slug:        "ai-summarizer",
			CategoryID:  "study-tools",
			Name:        "AI Text Summarizer",
			Description: "Transform lengthy content into concise summaries with AI. Choose summary length and tone.",
			Icon:        "✨",
			Tags:        []string{"ai", "summary", "text", "study", "productivity"},
			Enabled:     true,
			Users:       2500,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingServer,
			UpdatedAt:   month(2025, 1),
		},
	}
}
