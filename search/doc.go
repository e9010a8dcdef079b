// Package search provides a BM25 ranking strategy for the index package.
//
// It exists to:
//   - Keep index small and dependency-light
//   - Offer relevance-scored ranking without forcing Bleve on every consumer
//
// # Usage
//
// The primary type is [BM25Searcher], which implements [index.Searcher]:
//
//	searcher := search.NewBM25Searcher(search.BM25Config{})
//	defer searcher.Close()
//
//	idx, err := index.Build(cat, index.Options{Searcher: searcher})
//
// # Configuration
//
// [BM25Config] allows customization of field boosts and safety limits:
//
//	cfg := search.BM25Config{
//	    NameBoost:     3,    // Boost name matches (default: 3)
//	    SlugBoost:     3,    // Boost slug matches (default: 3)
//	    TagsBoost:     2,    // Boost tag matches (default: 2)
//	    MaxDocs:       1000, // Limit documents to index (0 = unlimited)
//	    MaxDocTextLen: 5000, // Truncate long descriptions (0 = unlimited)
//	}
//
// # Thread Safety
//
// BM25Searcher is safe for concurrent use. It guards its cache of Bleve
// indexes with an RWMutex. Each distinct document set (for example, one per
// category filter) gets its own index, keyed by a fingerprint of the
// documents, and is only rebuilt when those documents change.
//
// # Behavior
//
// Empty queries return documents in declared order, matching the index
// package's default behavior. Non-empty queries are ranked by BM25 score with
// deterministic tie-breaking on declared order.
package search
