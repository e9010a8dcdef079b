package llmproxy

import "errors"

var (
	// ErrUnknownTask is returned for a task name with no prompt.
	ErrUnknownTask = errors.New("unknown prompt task")

	// ErrEmptyText is returned when the user text is blank.
	ErrEmptyText = errors.New("text is required")

	// ErrNotConfigured is returned when no API key was provided.
	ErrNotConfigured = errors.New("llm forwarding is not configured")

	// ErrUpstream wraps failures of the completion endpoint.
	ErrUpstream = errors.New("llm upstream error")
)
