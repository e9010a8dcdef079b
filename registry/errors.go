package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrNilSource    = errors.New("registry source is nil")
	ErrNotWatchable = errors.New("registry source cannot be watched")
)
