package loader

import "errors"

var (
	ErrPathRequired      = errors.New("catalog path is required")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrSchema            = errors.New("catalog does not match schema")
	ErrNormalize         = errors.New("invalid catalog field")
)
