package catalog

import "errors"

// Sentinel errors wrapped by Validate. Every one of them is a configuration
// defect: a catalog that produces any of these must not be served.
var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrDuplicateCategory = errors.New("duplicate category id")
	ErrInvalidTool       = errors.New("invalid tool")
	ErrDuplicateToolID   = errors.New("duplicate tool id")
	ErrDanglingCategory  = errors.New("unknown category reference")
	ErrDuplicateSlug     = errors.New("duplicate slug within category")
)
