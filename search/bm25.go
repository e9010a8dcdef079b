package search

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/jonwraymond/toolcatalog/index"
)

// BM25Config configures a BM25Searcher. Zero values select defaults.
type BM25Config struct {
	NameBoost        float64 // default 3
	SlugBoost        float64 // default 3
	TagsBoost        float64 // default 2
	DescriptionBoost float64 // default 1

	// MaxDocs limits how many documents are indexed (0 = unlimited).
	MaxDocs int
	// MaxDocTextLen truncates descriptions before indexing (0 = unlimited).
	MaxDocTextLen int
	// MaxCached bounds how many document sets keep a live Bleve index.
	// Default 8.
	MaxCached int
}

func (c BM25Config) withDefaults() BM25Config {
	if c.NameBoost <= 0 {
		c.NameBoost = 3
	}
	if c.SlugBoost <= 0 {
		c.SlugBoost = 3
	}
	if c.TagsBoost <= 0 {
		c.TagsBoost = 2
	}
	if c.DescriptionBoost <= 0 {
		c.DescriptionBoost = 1
	}
	if c.MaxCached <= 0 {
		c.MaxCached = 8
	}
	return c
}

// BM25Searcher implements index.Searcher with an in-memory Bleve index per
// distinct document set. Indexes are cached by document fingerprint.
type BM25Searcher struct {
	cfg BM25Config

	mu     sync.RWMutex
	cache  map[string]*cachedIndex
	order  []string // fingerprints, oldest first
	closed bool
}

// cachedIndex is closed once it has left the cache and no search holds it.
type cachedIndex struct {
	idx bleve.Index
	pos map[string]int // doc id -> declared position

	refs      atomic.Int64
	retired   atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func (ci *cachedIndex) close() error {
	ci.closeOnce.Do(func() { ci.closeErr = ci.idx.Close() })
	return ci.closeErr
}

// retire drops the cache's claim on ci. It closes now when idle; otherwise
// the last release does.
func (ci *cachedIndex) retire() error {
	ci.retired.Store(true)
	if ci.refs.Load() == 0 {
		return ci.close()
	}
	return nil
}

// NewBM25Searcher returns a searcher using cfg.
func NewBM25Searcher(cfg BM25Config) *BM25Searcher {
	return &BM25Searcher{
		cfg:   cfg.withDefaults(),
		cache: make(map[string]*cachedIndex),
	}
}

// Search implements index.Searcher. Results follow the tiered match rule of
// index.MatchTier; within a tier the BM25 score decides, then declared
// position. Documents only Bleve matches rank after every tier. An empty
// query returns docs in declared order.
func (s *BM25Searcher) Search(q string, limit int, docs []index.SearchDoc) ([]index.Summary, error) {
	if s.cfg.MaxDocs > 0 && len(docs) > s.cfg.MaxDocs {
		docs = docs[:s.cfg.MaxDocs]
	}

	tokens := index.Tokenize(q)
	if len(tokens) == 0 {
		return firstN(docs, limit), nil
	}
	if len(docs) == 0 {
		return []index.Summary{}, nil
	}

	ci, err := s.acquire(docs)
	if err != nil {
		return nil, err
	}
	defer s.release(ci)

	size := len(docs)
	req := bleve.NewSearchRequestOptions(s.buildQuery(tokens), size, 0, false)
	res, err := ci.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search: %w", err)
	}

	scores := make(map[int]float64, len(res.Hits))
	for _, h := range res.Hits {
		if pos, ok := ci.pos[h.ID]; ok {
			scores[pos] = h.Score
		}
	}

	type hit struct {
		tier  int
		pos   int
		score float64
	}
	hits := make([]hit, 0, len(scores))
	for pos, doc := range docs {
		score, scored := scores[pos]
		tier, matched := index.MatchTier(tokens, doc.Summary)
		switch {
		case matched:
		case scored:
			tier = math.MaxInt
		default:
			continue
		}
		hits = append(hits, hit{tier: tier, pos: pos, score: score})
	}
	slices.SortFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.tier, b.tier); c != 0 {
			return c
		}
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]index.Summary, len(hits))
	for i, h := range hits {
		out[i] = cloneSummary(docs[h.pos].Summary)
	}
	return out, nil
}

func (s *BM25Searcher) buildQuery(tokens []string) query.Query {
	text := strings.Join(tokens, " ")
	fields := []struct {
		name  string
		boost float64
	}{
		{"name", s.cfg.NameBoost},
		{"slug", s.cfg.SlugBoost},
		{"tags", s.cfg.TagsBoost},
		{"description", s.cfg.DescriptionBoost},
	}

	dq := bleve.NewDisjunctionQuery()
	for _, f := range fields {
		mq := bleve.NewMatchQuery(text)
		mq.SetField(f.name)
		mq.SetBoost(f.boost)
		dq.AddQuery(mq)
	}
	// Prefix terms let partial words ("conv") reach name and slug terms.
	for _, tok := range tokens {
		for _, field := range []string{"name", "slug"} {
			pq := bleve.NewPrefixQuery(tok)
			pq.SetField(field)
			pq.SetBoost(1)
			dq.AddQuery(pq)
		}
	}
	return dq
}

// acquire returns the cached Bleve index for docs, building it on a miss.
// The caller must release it when the search is done.
func (s *BM25Searcher) acquire(docs []index.SearchDoc) (*cachedIndex, error) {
	fp := computeFingerprint(docs)

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrClosed
	}
	ci, ok := s.cache[fp]
	if ok {
		// Retiring happens under the write lock, so ci is still live here.
		ci.refs.Add(1)
	}
	s.mu.RUnlock()
	if ok {
		return ci, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if ci, ok := s.cache[fp]; ok {
		ci.refs.Add(1)
		return ci, nil
	}

	ci, err := s.build(docs)
	if err != nil {
		return nil, err
	}
	ci.refs.Add(1)
	s.cache[fp] = ci
	s.order = append(s.order, fp)
	for len(s.order) > s.cfg.MaxCached {
		oldest := s.order[0]
		s.order = s.order[1:]
		if old, ok := s.cache[oldest]; ok {
			delete(s.cache, oldest)
			_ = old.retire()
		}
	}
	return ci, nil
}

func (s *BM25Searcher) release(ci *cachedIndex) {
	if ci.refs.Add(-1) == 0 && ci.retired.Load() {
		_ = ci.close()
	}
}

func (s *BM25Searcher) build(docs []index.SearchDoc) (*cachedIndex, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}

	batch := idx.NewBatch()
	pos := make(map[string]int, len(docs))
	for i, doc := range docs {
		desc := doc.Summary.Description
		if desc == "" {
			desc = doc.DocText
		}
		if s.cfg.MaxDocTextLen > 0 && len(desc) > s.cfg.MaxDocTextLen {
			desc = truncateRunes(desc, s.cfg.MaxDocTextLen)
		}
		err := batch.Index(doc.ID, map[string]any{
			"name":        doc.Summary.Name,
			"slug":        strings.ReplaceAll(doc.Summary.Slug, "-", " "),
			"tags":        strings.Join(doc.Summary.Tags, " "),
			"description": desc,
		})
		if err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("index doc %q: %w", doc.ID, err)
		}
		pos[doc.ID] = i
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("index batch: %w", err)
	}
	return &cachedIndex{idx: idx, pos: pos}, nil
}

// Close releases every cached Bleve index. Searches already running finish
// first; searches after Close fail with ErrClosed.
func (s *BM25Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	for fp, ci := range s.cache {
		delete(s.cache, fp)
		if err := ci.retire(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.order = nil
	return firstErr
}

func firstN(docs []index.SearchDoc, limit int) []index.Summary {
	n := len(docs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]index.Summary, n)
	for i := range n {
		out[i] = cloneSummary(docs[i].Summary)
	}
	return out
}

func cloneSummary(s index.Summary) index.Summary {
	s.Tags = slices.Clone(s.Tags)
	return s
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	for n > 0 && n < len(s) && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
