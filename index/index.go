package index

import (
	"fmt"
	"time"

	"github.com/jonwraymond/toolcatalog/catalog"
)

// Options configures Build. The zero value is usable.
type Options struct {
	// Searcher ranks search results. Defaults to TieredSearcher.
	Searcher Searcher

	// LinkPolicy governs direct links to disabled tools. Defaults to
	// LinkEnabledOnly.
	LinkPolicy LinkPolicy

	// Version is reported by Index.Version. Registries bump it on every
	// successful reload.
	Version uint64
}

// Index is an immutable, validated view over a catalog.
type Index struct {
	source       catalog.Catalog
	categories   []catalog.Category
	categoryByID map[string]catalog.Category

	// tools holds every tool in canonical order: category order, then
	// declared position.
	tools      []Summary
	byRoute    map[routeKey]int
	byID       map[string]int
	byCategory map[string][]int
	docs       []SearchDoc

	searcher    Searcher
	policy      LinkPolicy
	version     uint64
	fingerprint string
	builtAt     time.Time
}

type routeKey struct {
	category string
	slug     string
}

// Stats summarizes an index. Status counts cover every tool, with an unset
// status counted as live; FeaturedTools and NewTools count visible tools only.
type Stats struct {
	Version           uint64    `json:"version"`
	Fingerprint       string    `json:"fingerprint"`
	Categories        int       `json:"categories"`
	EnabledCategories int       `json:"enabledCategories"`
	Tools             int       `json:"tools"`
	VisibleTools      int       `json:"visibleTools"`
	LiveTools         int       `json:"liveTools"`
	BetaTools         int       `json:"betaTools"`
	ComingTools       int       `json:"comingTools"`
	DevelopmentTools  int       `json:"developmentTools"`
	MaintenanceTools  int       `json:"maintenanceTools"`
	FeaturedTools     int       `json:"featuredTools"`
	NewTools          int       `json:"newTools"`
	LinkPolicy        string    `json:"linkPolicy"`
	BuiltAt           time.Time `json:"builtAt"`
}

// Build validates cat and indexes it. Any validation problem is a
// configuration error: the returned error wraps ErrConfig and every cause.
func Build(cat catalog.Catalog, opts Options) (*Index, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	policy := opts.LinkPolicy
	if policy == "" {
		policy = LinkEnabledOnly
	}
	searcher := opts.Searcher
	if searcher == nil {
		searcher = TieredSearcher{}
	}

	idx := &Index{
		source:       cat.Clone(),
		categories:   cat.ListCategories(true),
		categoryByID: make(map[string]catalog.Category, len(cat.Categories)),
		byRoute:      make(map[routeKey]int, len(cat.Tools)),
		byID:         make(map[string]int, len(cat.Tools)),
		byCategory:   make(map[string][]int, len(cat.Categories)),
		searcher:     searcher,
		policy:       policy,
		version:      opts.Version,
		fingerprint:  fingerprint(cat),
		builtAt:      time.Now(),
	}
	for _, c := range idx.categories {
		idx.categoryByID[c.ID] = c
	}

	for i, tool := range cat.ListTools(true) {
		category := idx.categoryByID[tool.CategoryID]
		s := newSummary(tool, category, cat.Visible(tool))
		idx.tools = append(idx.tools, s)
		idx.byRoute[routeKey{tool.CategoryID, tool.Slug}] = i
		idx.byID[tool.ID] = i
		idx.byCategory[tool.CategoryID] = append(idx.byCategory[tool.CategoryID], i)
		idx.docs = append(idx.docs, SearchDoc{ID: tool.ID, DocText: docText(s), Summary: s})
	}
	return idx, nil
}

// Resolve looks up the tool served at (categoryID, slug). The match is exact
// and case-sensitive. Disabled tools resolve only under LinkKeepAlive.
func (x *Index) Resolve(categoryID, slug string) (Summary, bool) {
	return x.Lookup(categoryID, slug, x.policy == LinkKeepAlive)
}

// Lookup is Resolve with an explicit view: includeDisabled selects whether
// disabled tools are matched.
func (x *Index) Lookup(categoryID, slug string, includeDisabled bool) (Summary, bool) {
	i, ok := x.byRoute[routeKey{categoryID, slug}]
	return x.at(i, ok, includeDisabled)
}

// ToolByID looks up a tool by its global identifier.
func (x *Index) ToolByID(id string, includeDisabled bool) (Summary, bool) {
	i, ok := x.byID[id]
	return x.at(i, ok, includeDisabled)
}

func (x *Index) at(i int, ok, includeDisabled bool) (Summary, bool) {
	if !ok {
		return Summary{}, false
	}
	s := x.tools[i]
	if !s.Enabled && !includeDisabled {
		return Summary{}, false
	}
	return s.clone(), true
}

// ListByCategory returns the tools of one category in declared order. An
// unknown category, or a disabled one when includeDisabled is false, yields
// an empty slice.
func (x *Index) ListByCategory(categoryID string, includeDisabled bool) []Summary {
	out := []Summary{}
	for _, i := range x.byCategory[categoryID] {
		if s := x.tools[i]; s.Enabled || includeDisabled {
			out = append(out, s.clone())
		}
	}
	return out
}

// Search ranks visible tools against query. categoryFilter restricts results
// to one category; "" and "all" mean no restriction. An empty query lists
// every visible tool in canonical order.
func (x *Index) Search(query, categoryFilter string) []Summary {
	docs := make([]SearchDoc, 0, len(x.docs))
	for _, doc := range x.docs {
		if !doc.Summary.Enabled {
			continue
		}
		if categoryFilter != "" && categoryFilter != "all" && doc.Summary.CategoryID != categoryFilter {
			continue
		}
		docs = append(docs, doc)
	}

	results, err := x.searcher.Search(query, 0, docs)
	if err != nil {
		// A failing pluggable searcher degrades to the default ranking.
		results, _ = TieredSearcher{}.Search(query, 0, docs)
	}
	if results == nil {
		results = []Summary{}
	}
	return results
}

// Category returns the category with the given id, enabled or not.
func (x *Index) Category(id string) (catalog.Category, bool) {
	c, ok := x.categoryByID[id]
	return c, ok
}

// Categories returns categories ordered by their Order field.
func (x *Index) Categories(includeDisabled bool) []catalog.Category {
	out := make([]catalog.Category, 0, len(x.categories))
	for _, c := range x.categories {
		if c.Enabled || includeDisabled {
			out = append(out, c)
		}
	}
	return out
}

// Tools returns every tool in canonical order.
func (x *Index) Tools(includeDisabled bool) []Summary {
	out := make([]Summary, 0, len(x.tools))
	for _, s := range x.tools {
		if s.Enabled || includeDisabled {
			out = append(out, s.clone())
		}
	}
	return out
}

// Docs returns the search documents of every visible tool.
func (x *Index) Docs() []SearchDoc {
	out := make([]SearchDoc, 0, len(x.docs))
	for _, doc := range x.docs {
		if doc.Summary.Enabled {
			doc.Summary = doc.Summary.clone()
			out = append(out, doc)
		}
	}
	return out
}

// Catalog returns a copy of the catalog the index was built from.
func (x *Index) Catalog() catalog.Catalog { return x.source.Clone() }

// Version returns the version the index was built with.
func (x *Index) Version() uint64 { return x.version }

// Fingerprint returns a hash of the source catalog.
func (x *Index) Fingerprint() string { return x.fingerprint }

// LinkPolicy returns the policy Resolve applies.
func (x *Index) LinkPolicy() LinkPolicy { return x.policy }

// Stats summarizes the index.
func (x *Index) Stats() Stats {
	st := Stats{
		Version:     x.version,
		Fingerprint: x.fingerprint,
		Categories:  len(x.categories),
		Tools:       len(x.tools),
		LinkPolicy:  string(x.policy),
		BuiltAt:     x.builtAt,
	}
	for _, c := range x.categories {
		if c.Enabled {
			st.EnabledCategories++
		}
	}
	for _, s := range x.tools {
		switch s.Status {
		case "", catalog.StatusLive:
			st.LiveTools++
		case catalog.StatusBeta:
			st.BetaTools++
		case catalog.StatusComing:
			st.ComingTools++
		case catalog.StatusDevelopment:
			st.DevelopmentTools++
		case catalog.StatusMaintenance:
			st.MaintenanceTools++
		}
		if !s.Enabled {
			continue
		}
		st.VisibleTools++
		if s.Featured {
			st.FeaturedTools++
		}
		if s.New {
			st.NewTools++
		}
	}
	return st
}
