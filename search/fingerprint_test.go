package search

import (
	"testing"

	"github.com/jonwraymond/toolcatalog/index"
)

func TestFingerprint_SameDocsProduceSameFingerprint(t *testing.T) {
	docs := []index.SearchDoc{
		{
			ID:      "json-format",
			DocText: "json format",
			Summary: index.Summary{ID: "json-format", Slug: "json-format", CategoryID: "quick-tools", Name: "JSON Format"},
		},
		{
			ID:      "text-case",
			DocText: "text case",
			Summary: index.Summary{ID: "text-case", Slug: "text-case", CategoryID: "quick-tools", Name: "Text Case"},
		},
	}

	fp1 := computeFingerprint(docs)
	fp2 := computeFingerprint(docs)

	if fp1 != fp2 {
		t.Errorf("same docs produced different fingerprints: %s vs %s", fp1, fp2)
	}
	if fp1 == "" {
		t.Error("fingerprint is empty")
	}
}

func TestFingerprint_OrderMatters(t *testing.T) {
	doc1 := index.SearchDoc{ID: "a", DocText: "one"}
	doc2 := index.SearchDoc{ID: "b", DocText: "two"}

	fp1 := computeFingerprint([]index.SearchDoc{doc1, doc2})
	fp2 := computeFingerprint([]index.SearchDoc{doc2, doc1})

	if fp1 == fp2 {
		t.Error("different order should produce different fingerprints")
	}
}

func TestFingerprint_IncludesIndexedFields(t *testing.T) {
	base := index.SearchDoc{
		ID:      "json-format",
		DocText: "json format",
		Summary: index.Summary{
			ID:          "json-format",
			Slug:        "json-format",
			CategoryID:  "quick-tools",
			Name:        "JSON Format",
			Description: "Format JSON",
			Tags:        []string{"data", "format"},
		},
	}

	mutations := map[string]func(*index.SearchDoc){
		"id":          func(d *index.SearchDoc) { d.ID = "changed" },
		"doc text":    func(d *index.SearchDoc) { d.DocText = "changed" },
		"slug":        func(d *index.SearchDoc) { d.Summary.Slug = "changed" },
		"category":    func(d *index.SearchDoc) { d.Summary.CategoryID = "changed" },
		"name":        func(d *index.SearchDoc) { d.Summary.Name = "changed" },
		"description": func(d *index.SearchDoc) { d.Summary.Description = "changed" },
		"tags":        func(d *index.SearchDoc) { d.Summary.Tags = []string{"other"} },
	}

	baseFP := computeFingerprint([]index.SearchDoc{base})
	for name, mutate := range mutations {
		v := base
		v.Summary.Tags = append([]string(nil), base.Summary.Tags...)
		mutate(&v)
		if computeFingerprint([]index.SearchDoc{v}) == baseFP {
			t.Errorf("changing %s should change the fingerprint", name)
		}
	}
}

func TestFingerprint_TagOrderIndependent(t *testing.T) {
	doc1 := index.SearchDoc{ID: "a", Summary: index.Summary{ID: "a", Tags: []string{"alpha", "bravo", "charlie"}}}
	doc2 := index.SearchDoc{ID: "a", Summary: index.Summary{ID: "a", Tags: []string{"charlie", "alpha", "bravo"}}}

	if computeFingerprint([]index.SearchDoc{doc1}) != computeFingerprint([]index.SearchDoc{doc2}) {
		t.Error("same tags in different order should produce same fingerprint")
	}
}

func TestFingerprint_EmptyDocs(t *testing.T) {
	var docs []index.SearchDoc
	fp := computeFingerprint(docs)

	fp2 := computeFingerprint(nil)
	if fp != fp2 {
		t.Error("empty slice and nil should produce same fingerprint")
	}
	if fp == "" {
		t.Error("fingerprint should not be empty for empty docs")
	}
}
