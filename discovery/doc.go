// Package discovery is the read facade presentation code talks to: page
// routing, category listings, the search box, and the home page shelves.
//
// A Discovery reads the current index from an IndexProvider on every call,
// so it keeps serving the newest catalog after a registry reload without
// being rebuilt.
//
// # Routing
//
//	disc := discovery.New(reg, discovery.Options{})
//
//	res := disc.Route("quick-tools", "json-format")
//	if !res.Found {
//	    // render the 404 page
//	}
//
// A missing route is an ordinary result, never an error. RouteURL accepts a
// full page path such as /tools/quick-tools/json-format.
//
// # Shelves and Filters
//
// Featured, NewTools and Top feed the home page; Top ranks by user count.
// ComingSoon lists upcoming tools even though they are disabled. ByPricing,
// ByProcessing and APIRequired narrow the visible tools, and the same
// filters exist on Results for narrowing a search.
//
// # Input Normalization
//
// Inputs come straight from URLs and search boxes. Category ids and slugs
// are trimmed. Queries are trimmed and capped at Options.MaxQueryLen runes
// (default 200). Nothing is rejected.
//
// # Thread Safety
//
// All Discovery methods are safe for concurrent use.
package discovery
