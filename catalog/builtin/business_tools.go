package builtin

import "github.com/jonwraymond/toolcatalog/catalog"

func businessTools() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "ai-resume",
			Slug:        "ai-resume",
			CategoryID:  "business",
			Name:        "AI Resume & Cover Letter",
			Description: "Generate professional resumes and cover letters with AI assistance.",
			Icon:        "📝",
			Tags:        []string{"resume", "cover letter", "ai", "career"},
			Enabled:     true,
			Featured:    true,
			New:         true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingServer,
			UpdatedAt:   month(2025, 1),
		},
		{
			ID:          "spam-email-checker",
			Slug:        "spam-email-checker",
			CategoryID:  "business",
			Name:        "Spam Email Checker",
			Description: "Paste an email and get an AI assessment of phishing and spam signals.",
			Icon:        "📧",
			Tags:        []string{"email", "spam", "phishing", "ai"},
			Enabled:     true,
			New:         true,
			Status:      catalog.StatusBeta,
			APIRequired: true,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingServer,
		},
	}
}
