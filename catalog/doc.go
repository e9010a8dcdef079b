// Package catalog defines the static category and tool records that make up
// the tool catalog, along with ordered listing and exhaustive validation.
//
// A [Catalog] is plain configuration: it is declared once (compiled in via
// package builtin, or decoded from a file by package loader) and never mutated
// afterwards. Consumers do not query a Catalog directly on the hot path; the
// index package builds lookup structures from it.
//
// # Ordering
//
// Categories are ordered by their Order key, ties broken by declared position.
// Tools are ordered by the order of their category, then by declared position.
//
// # Enablement
//
// A tool is visible only when both the tool and its category are enabled.
// ListCategories and ListTools take an includeDisabled flag that selects
// between the visible view and the full view.
//
// # Validation
//
// [Catalog.Validate] reports every problem at once, joined with errors.Join.
// Each problem wraps one of the sentinel errors so callers can test with
// errors.Is:
//
//	if err := cat.Validate(); errors.Is(err, catalog.ErrDuplicateSlug) {
//	    // two tools share a (category, slug) routing key
//	}
package catalog
