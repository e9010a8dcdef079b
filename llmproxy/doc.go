// Package llmproxy forwards the AI-backed tools' prompts to an
// OpenAI-compatible chat completion endpoint and returns the reply.
//
// Each task has a fixed system prompt and generation settings; callers only
// supply the user text and a few task options. Nothing is stored.
//
// # Rate Limiting
//
// Limiter is a per-client fixed window counter, by default 10 requests per
// hour. The HTTP server keys it by client IP.
package llmproxy
