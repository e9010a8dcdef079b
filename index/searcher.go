package index

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// SearchDoc is the unit handed to a Searcher: one visible tool with its
// searchable text.
type SearchDoc struct {
	ID      string
	DocText string
	Summary Summary
}

// Searcher ranks docs against a query. Docs arrive in declared order and
// already restricted to the caller's view; a Searcher must only reorder and
// drop them. A limit of zero or less means no limit.
type Searcher interface {
	Search(query string, limit int, docs []SearchDoc) ([]Summary, error)
}

// Tokenize lowercases s and splits it on every non-letter, non-digit rune.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Match tiers, best first.
const (
	tierNone = iota
	tierExact
	tierPrefix
	tierSubstring
	tierTag
	tierDescription
)

// TieredSearcher is the default Searcher. It is stateless.
type TieredSearcher struct{}

// Search implements Searcher.
func (TieredSearcher) Search(query string, limit int, docs []SearchDoc) ([]Summary, error) {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return firstN(docs, limit), nil
	}

	type hit struct {
		tier int
		pos  int
	}
	hits := make([]hit, 0, len(docs))
	for i, doc := range docs {
		if tier, ok := MatchTier(tokens, doc.Summary); ok {
			hits = append(hits, hit{tier: tier, pos: i})
		}
	}
	slices.SortFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.tier, b.tier); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Summary, len(hits))
	for i, h := range hits {
		out[i] = docs[h.pos].Summary.clone()
	}
	return out, nil
}

// MatchTier grades how well query tokens match s: exact slug or name, then
// prefix, then substring, then tag, then description. Lower tiers rank
// first. ok is false when nothing matches.
func MatchTier(tokens []string, s Summary) (tier int, ok bool) {
	tier = matchTier(tokens, s)
	return tier, tier != tierNone
}

func matchTier(tokens []string, s Summary) int {
	slugQuery := strings.Join(tokens, "-")
	nameQuery := strings.Join(tokens, " ")
	name := strings.Join(Tokenize(s.Name), " ")

	switch {
	case s.Slug == slugQuery || name == nameQuery:
		return tierExact
	case strings.HasPrefix(s.Slug, slugQuery) || strings.HasPrefix(name, nameQuery):
		return tierPrefix
	case strings.Contains(s.Slug, slugQuery) || strings.Contains(name, nameQuery):
		return tierSubstring
	}

	nameTags := Tokenize(s.Name)
	for _, tag := range s.Tags {
		nameTags = append(nameTags, Tokenize(tag)...)
	}
	if coversAll(tokens, nameTags) {
		return tierTag
	}
	if coversAll(tokens, Tokenize(s.Description)) {
		return tierDescription
	}
	return tierNone
}

// coversAll reports whether every query token is a prefix of some field token.
func coversAll(query, field []string) bool {
	for _, q := range query {
		if !slices.ContainsFunc(field, func(f string) bool { return strings.HasPrefix(f, q) }) {
			return false
		}
	}
	return true
}

func firstN(docs []SearchDoc, limit int) []Summary {
	n := len(docs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Summary, n)
	for i := range n {
		out[i] = docs[i].Summary.clone()
	}
	return out
}

func docText(s Summary) string {
	parts := make([]string, 0, 4+len(s.Tags))
	parts = append(parts, s.Name, s.Slug, s.Description)
	parts = append(parts, s.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
