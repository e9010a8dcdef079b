package discovery

import (
	"github.com/jonwraymond/toolcatalog/catalog"
	"github.com/jonwraymond/toolcatalog/index"
)

// Results is an ordered list of tools with helper methods.
type Results []index.Summary

// IDs returns just the tool IDs from the results.
func (r Results) IDs() []string {
	ids := make([]string, len(r))
	for i, s := range r {
		ids[i] = s.ID
	}
	return ids
}

// URLs returns the page paths of the results.
func (r Results) URLs() []string {
	urls := make([]string, len(r))
	for i, s := range r {
		urls[i] = s.URL
	}
	return urls
}

// Filter returns results for which keep reports true, preserving order.
func (r Results) Filter(keep func(index.Summary) bool) Results {
	filtered := Results{}
	for _, s := range r {
		if keep(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterByCategory returns results in the given category.
func (r Results) FilterByCategory(categoryID string) Results {
	return r.Filter(func(s index.Summary) bool { return s.CategoryID == categoryID })
}

// Limit returns at most n results. n <= 0 means no limit.
func (r Results) Limit(n int) Results {
	if n <= 0 || n >= len(r) {
		return r
	}
	return r[:n]
}

// ByPricing returns results with the given pricing model.
func (r Results) ByPricing(p catalog.Pricing) Results {
	return r.Filter(func(s index.Summary) bool { return s.Pricing == p })
}

// ByProcessing returns results with the given processing location.
func (r Results) ByProcessing(p catalog.Processing) Results {
	return r.Filter(func(s index.Summary) bool { return s.Processing == p })
}

// APIRequired returns results that need an external API.
func (r Results) APIRequired() Results {
	return r.Filter(func(s index.Summary) bool { return s.APIRequired })
}

// ByStatus returns results with the given lifecycle status.
func (r Results) ByStatus(st catalog.Status) Results {
	return r.Filter(func(s index.Summary) bool { return s.Status == st })
}
