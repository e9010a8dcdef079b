package discovery

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jonwraymond/toolcatalog/catalog"
	"github.com/jonwraymond/toolcatalog/index"
)

// DefaultMaxQueryLen caps search queries, in runes.
const DefaultMaxQueryLen = 200

// IndexProvider hands out the current index. *registry.Registry satisfies it.
type IndexProvider interface {
	Index() *index.Index
}

// IndexProviderFunc adapts a function to IndexProvider.
type IndexProviderFunc func() *index.Index

// Index implements IndexProvider.
func (f IndexProviderFunc) Index() *index.Index { return f() }

// Static returns a provider that always serves idx.
func Static(idx *index.Index) IndexProvider {
	return IndexProviderFunc(func() *index.Index { return idx })
}

// Observer receives query outcomes. telemetry.Metrics satisfies it.
type Observer interface {
	ObserveRoute(found bool)
	ObserveSearch(results int)
}

// Options configures a Discovery instance.
type Options struct {
	// MaxQueryLen caps search queries in runes. Default: 200.
	MaxQueryLen int

	// Observer, if set, is told about every route lookup and search.
	Observer Observer
}

// Discovery answers routing, listing and search requests against the
// provider's current index.
type Discovery struct {
	provider    IndexProvider
	maxQueryLen int
	observer    Observer
}

// RouteResult is the outcome of a route lookup. Found == false is the
// not-found signal; Tool and Category are zero in that case.
type RouteResult struct {
	Tool     index.Summary    `json:"tool"`
	Category catalog.Category `json:"category"`
	Found    bool             `json:"found"`
}

// CategoryPage is an enabled category together with its visible tool count.
type CategoryPage struct {
	catalog.Category
	ToolCount int    `json:"toolCount"`
	URL       string `json:"url"`
}

// New creates a Discovery reading from p.
func New(p IndexProvider, opts Options) *Discovery {
	maxLen := opts.MaxQueryLen
	if maxLen <= 0 {
		maxLen = DefaultMaxQueryLen
	}
	return &Discovery{provider: p, maxQueryLen: maxLen, observer: opts.Observer}
}

// Route resolves a (category, slug) navigation request. It never panics and
// never errors; an unknown or disabled tool yields Found == false.
func (d *Discovery) Route(categoryID, slug string) RouteResult {
	categoryID = strings.TrimSpace(categoryID)
	slug = strings.TrimSpace(slug)

	res := d.route(categoryID, slug)
	if d.observer != nil {
		d.observer.ObserveRoute(res.Found)
	}
	return res
}

func (d *Discovery) route(categoryID, slug string) RouteResult {
	if categoryID == "" || slug == "" {
		return RouteResult{}
	}
	idx := d.provider.Index()
	tool, ok := idx.Resolve(categoryID, slug)
	if !ok {
		return RouteResult{}
	}
	category, _ := idx.Category(tool.CategoryID)
	return RouteResult{Tool: tool, Category: category, Found: true}
}

// RouteURL resolves a page path of the form /tools/{category}/{slug}. A
// trailing slash, query string or fragment is ignored. Any other shape is
// not found.
func (d *Discovery) RouteURL(path string) RouteResult {
	categoryID, slug, ok := ParsePath(path)
	if !ok {
		if d.observer != nil {
			d.observer.ObserveRoute(false)
		}
		return RouteResult{}
	}
	return d.Route(categoryID, slug)
}

// ParsePath splits a tool page path into its routing key.
func ParsePath(path string) (categoryID, slug string, ok bool) {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")

	rest, found := strings.CutPrefix(path, "/tools/")
	if !found {
		return "", "", false
	}
	categoryID, slug, found = strings.Cut(rest, "/")
	if !found || categoryID == "" || slug == "" || strings.Contains(slug, "/") {
		return "", "", false
	}
	return categoryID, slug, true
}

// ListPage returns the tools of one category in declared order. Unknown and
// disabled categories yield an empty list.
func (d *Discovery) ListPage(categoryID string, includeDisabled bool) Results {
	return Results(d.provider.Index().ListByCategory(strings.TrimSpace(categoryID), includeDisabled))
}

// SearchPage ranks visible tools against query, optionally within one
// category. An empty query lists every visible tool.
func (d *Discovery) SearchPage(query, categoryFilter string) Results {
	query = d.NormalizeQuery(query)
	categoryFilter = strings.TrimSpace(categoryFilter)

	results := Results(d.provider.Index().Search(query, categoryFilter))
	if d.observer != nil {
		d.observer.ObserveSearch(len(results))
	}
	return results
}

// NormalizeQuery trims q and caps it at the configured length in runes.
func (d *Discovery) NormalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if runes := []rune(q); len(runes) > d.maxQueryLen {
		q = strings.TrimSpace(string(runes[:d.maxQueryLen]))
	}
	return q
}

// Categories returns enabled categories in order, each with its number of
// visible tools.
func (d *Discovery) Categories() []CategoryPage {
	idx := d.provider.Index()
	cats := idx.Categories(false)
	pages := make([]CategoryPage, len(cats))
	for i, c := range cats {
		pages[i] = CategoryPage{
			Category:  c,
			ToolCount: len(idx.ListByCategory(c.ID, false)),
			URL:       "/tools/" + c.ID,
		}
	}
	return pages
}

// Featured returns visible featured tools in canonical order.
func (d *Discovery) Featured(limit int) Results {
	return d.visible().Filter(func(s index.Summary) bool { return s.Featured }).Limit(limit)
}

// NewTools returns visible tools flagged new, in canonical order.
func (d *Discovery) NewTools(limit int) Results {
	return d.visible().Filter(func(s index.Summary) bool { return s.New }).Limit(limit)
}

// Top returns visible tools ordered by user count, most used first, with
// canonical order breaking ties. A non-empty categoryID restricts the
// ranking to that category ("all" means every category).
func (d *Discovery) Top(limit int, categoryID string) Results {
	tools := d.visible()
	if categoryID = strings.TrimSpace(categoryID); categoryID != "" && categoryID != "all" {
		tools = tools.FilterByCategory(categoryID)
	}
	slices.SortStableFunc(tools, func(a, b index.Summary) int {
		return cmp.Compare(b.Users, a.Users)
	})
	return tools.Limit(limit)
}

// ComingSoon returns tools with status coming in canonical order. They are
// usually disabled, so the lookup reads disabled records; tools in disabled
// categories stay hidden.
func (d *Discovery) ComingSoon(limit int) Results {
	idx := d.provider.Index()
	return Results(idx.Tools(true)).Filter(func(s index.Summary) bool {
		if s.Status != catalog.StatusComing {
			return false
		}
		c, ok := idx.Category(s.CategoryID)
		return ok && c.Enabled
	}).Limit(limit)
}

// ByPricing returns visible tools with the given pricing model.
func (d *Discovery) ByPricing(p catalog.Pricing) Results {
	return d.visible().ByPricing(p)
}

// ByProcessing returns visible tools that process data the given way.
func (d *Discovery) ByProcessing(p catalog.Processing) Results {
	return d.visible().ByProcessing(p)
}

// APIRequired returns visible tools that need an external API.
func (d *Discovery) APIRequired() Results {
	return d.visible().APIRequired()
}

func (d *Discovery) visible() Results {
	return Results(d.provider.Index().Tools(false))
}
