package builtin

import "github.com/jonwraymond/toolcatalog/catalog"

func devTools() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "code-reader",
			Slug:        "code-reader",
			CategoryID:  "dev-tools",
			Name:        "Code Dependency Visualizer",
			Description: "Analyze project structure and visualize file dependencies. Understand any codebase.",
			Icon:        "🔍",
			Tags:        []string{"code analysis", "dependencies", "visualization"},
			Enabled:     true,
			Users:       4300,
			Featured:    true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "tech-stack-analyzer",
			Slug:        "tech-stack-analyzer",
			CategoryID:  "dev-tools",
			Name:        "Tech Stack Analyzer",
			Description: "Compare frameworks and get AI-powered recommendations for your project.",
			Icon:        "⚙️",
			Tags:        []string{"frameworks", "planning", "ai analysis"},
			Enabled:     true,
			Users:       2700,
			Featured:    true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingHybrid,
		},
		{
			ID:          "stack-recommender",
			Slug:        "stack-recommender",
			CategoryID:  "dev-tools",
			Name:        "Stack Recommender",
			Description: "Get AI-powered tech stack recommendations based on your project requirements.",
			Icon:        "🤖",
			Tags:        []string{"ai", "planning", "recommendations"},
			Enabled:     true,
			Users:       1900,
			New:         true,
			Status:      catalog.StatusLive,
			APIRequired: true,
			Pricing:     catalog.PricingFreemium,
			Processing:  catalog.ProcessingServer,
		},
		{
			ID:          "base64",
			Slug:        "base64",
			CategoryID:  "dev-tools",
			Name:        "Base64 Encoder/Decoder",
			Description: "Encode and decode Base64 text and files in the browser.",
			Icon:        "🔡",
			Tags:        []string{"encoding", "base64", "convert"},
			Enabled:     true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "hash-generator",
			Slug:        "hash-generator",
			CategoryID:  "dev-tools",
			Name:        "Hash Generator",
			Description: "Compute MD5, SHA-1 and SHA-256 digests of text or files.",
			Icon:        "#️⃣",
			Tags:        []string{"hash", "checksum", "security"},
			Enabled:     true,
			Status:      catalog.StatusLive,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "regex-builder",
			Slug:        "regex-builder",
			CategoryID:  "dev-tools",
			Name:        "Regex Builder & Tester",
			Description: "Build and test regular expressions with real-time matching and explanation.",
			Icon:        "🔤",
			Tags:        []string{"regex", "testing", "pattern"},
			Enabled:     false,
			Status:      catalog.StatusComing,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingLocal,
		},
		{
			ID:          "api-tester",
			Slug:        "api-tester",
			CategoryID:  "dev-tools",
			Name:        "API Request Builder",
			Description: "Test REST APIs with custom headers, body, and authentication. See formatted responses.",
			Icon:        "🔌",
			Tags:        []string{"api", "testing", "http"},
			Enabled:     false,
			Status:      catalog.StatusComing,
			Pricing:     catalog.PricingFree,
			Processing:  catalog.ProcessingServer,
		},
	}
}
