package index

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"JSON Beautify", []string{"json", "beautify"}},
		{"csv-to-json", []string{"csv", "to", "json"}},
		{"  Spaces\tand\nlines ", []string{"spaces", "and", "lines"}},
		{"C++ / Go!", []string{"c", "go"}},
		{"", nil},
		{"---", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTieredSearcher_Limit(t *testing.T) {
	docs := []SearchDoc{
		{ID: "a", Summary: Summary{ID: "a", Slug: "json-a", Name: "JSON A"}},
		{ID: "b", Summary: Summary{ID: "b", Slug: "json-b", Name: "JSON B"}},
		{ID: "c", Summary: Summary{ID: "c", Slug: "json-c", Name: "JSON C"}},
	}

	got, err := TieredSearcher{}.Search("json", 2, docs)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"a", "b"}) {
		t.Errorf("Search() = %v", ids(got))
	}

	got, _ = TieredSearcher{}.Search("", 1, docs)
	if !reflect.DeepEqual(ids(got), []string{"a"}) {
		t.Errorf("empty query with limit = %v", ids(got))
	}
}

func TestTieredSearcher_TierOrder(t *testing.T) {
	docs := []SearchDoc{
		{ID: "desc", Summary: Summary{ID: "desc", Slug: "alpha", Name: "Alpha", Description: "works with pdf files"}},
		{ID: "tag", Summary: Summary{ID: "tag", Slug: "beta", Name: "Beta", Tags: []string{"pdf"}}},
		{ID: "substring", Summary: Summary{ID: "substring", Slug: "merge-pdf", Name: "Merge PDF"}},
		{ID: "prefix", Summary: Summary{ID: "prefix", Slug: "pdf-split", Name: "PDF Split"}},
		{ID: "exact", Summary: Summary{ID: "exact", Slug: "pdf", Name: "PDF"}},
	}

	got, _ := TieredSearcher{}.Search("pdf", 0, docs)
	want := []string{"exact", "prefix", "substring", "tag", "desc"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Search(pdf) = %v, want %v", ids(got), want)
	}
}
