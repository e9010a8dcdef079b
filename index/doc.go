// Package index validates a catalog and turns it into an immutable, queryable
// view: lookup by routing key, by tool id and by category, ordered listings,
// and ranked search.
//
// # Building
//
// An Index is built once from a catalog.Catalog. Build runs the catalog's
// exhaustive validation and refuses to produce an index when anything is
// wrong; the returned error wraps ErrConfig together with every cause:
//
//	idx, err := index.Build(builtin.Catalog(), index.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Summaries
//
// Tools cross the package boundary as Summary values, the renderable subset
// of a tool record:
//
//   - ID: Globally unique tool identifier
//   - Slug and CategoryID: The routing key
//   - CategoryName: Display name of the owning category
//   - ShortDescription: Description truncated to 120 runes
//   - URL: Page path, /tools/{category}/{slug}
//   - Enabled: Whether the tool and its category are both enabled
//
// Summaries are copies. Mutating one never affects the index.
//
// # Resolution
//
// Resolve is an exact, case-sensitive lookup. A miss is reported through the
// boolean result and is never an error. Whether disabled tools stay
// reachable by direct link is decided by the index's LinkPolicy:
//
//   - LinkEnabledOnly (default): disabled tools, and tools in disabled
//     categories, do not resolve
//   - LinkKeepAlive: they resolve, but still never appear in listings or
//     search results
//
// # Search
//
// Search delegates ranking to a pluggable Searcher. The default
// TieredSearcher tokenizes the query (lowercase, split on non-alphanumerics)
// and ranks each visible tool by its best matching tier:
//
//  1. Exact slug or name
//  2. Slug or name prefix
//  3. Slug or name substring
//  4. Every query token found among name or tag tokens
//  5. Every query token found among description tokens
//
// Ties keep declared order. An empty query lists every visible tool.
//
//	type MySearcher struct{}
//	func (s *MySearcher) Search(query string, limit int, docs []index.SearchDoc) ([]index.Summary, error) {
//	    // Custom ranking
//	}
//
//	idx, err := index.Build(cat, index.Options{Searcher: &MySearcher{}})
//
// # Concurrency
//
// An Index is never mutated after Build returns, so every method is safe for
// unrestricted concurrent use. Reloading means building a new Index and
// swapping it in; see the registry package.
package index
