package llmproxy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	defaultModel   = "gpt-4o-mini"
)

// Config configures a Forwarder.
type Config struct {
	// BaseURL overrides the OpenAI endpoint, e.g. a LiteLLM or OpenRouter
	// proxy. It must include the API version path (".../v1").
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Request is one prompt to forward.
type Request struct {
	Task    string            `json:"task"`
	Text    string            `json:"text"`
	Options map[string]string `json:"options,omitempty"`
}

// Response is the model's reply.
type Response struct {
	Task             string `json:"task"`
	Model            string `json:"model"`
	Content          string `json:"content"`
	PromptTokens     int    `json:"promptTokens"`
	CompletionTokens int    `json:"completionTokens"`
	Truncated        bool   `json:"truncated,omitempty"`
}

// Forwarder sends task prompts to the completion endpoint. A Forwarder
// without an API key rejects every request with ErrNotConfigured.
type Forwarder struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewForwarder creates a Forwarder. A nil logger is replaced by a no-op
// logger.
func NewForwarder(cfg Config, logger *zap.Logger) *Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Forwarder{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.Named("llmproxy"),
	}
	if f.model == "" {
		f.model = defaultModel
	}
	if f.timeout <= 0 {
		f.timeout = defaultTimeout
	}
	if cfg.APIKey == "" {
		return f
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	f.client = openai.NewClientWithConfig(config)
	return f
}

// Configured reports whether the forwarder has credentials.
func (f *Forwarder) Configured() bool { return f.client != nil }

// Forward sends req and returns the first completion choice.
func (f *Forwarder) Forward(ctx context.Context, req Request) (Response, error) {
	name := strings.TrimSpace(req.Task)
	t, ok := tasks[name]
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownTask, req.Task)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, ErrEmptyText
	}
	if f.client == nil {
		return Response{}, ErrNotConfigured
	}

	maxChars, maxTokens := t.limits(name, req.Options)
	text, truncated := truncate(text, maxChars)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: t.system(req.Options)},
			{Role: openai.ChatMessageRoleUser, Content: t.user(text, req.Options)},
		},
		MaxTokens:   maxTokens,
		Temperature: t.temperature,
	})
	if err != nil {
		f.logger.Warn("completion failed",
			zap.String("task", name),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return Response{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	f.logger.Debug("completion done",
		zap.String("task", name),
		zap.String("model", resp.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("latency", time.Since(start)),
	)
	return Response{
		Task:             name,
		Model:            resp.Model,
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		Truncated:        truncated,
	}, nil
}

// truncate caps s at max runes. max <= 0 means no cap.
func truncate(s string, max int) (string, bool) {
	if max <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return string(runes[:max]), true
}
