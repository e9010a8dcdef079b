package registry

import (
	"github.com/jonwraymond/toolcatalog/catalog"
)

// Dump is a read-only diagnostic view of the live catalog.
type Dump struct {
	Version     uint64         `json:"version"`
	Fingerprint string         `json:"fingerprint"`
	Source      string         `json:"source"`
	LinkPolicy  string         `json:"linkPolicy"`
	Counts      DumpCounts     `json:"counts"`
	Categories  []CategoryDump `json:"categories"`
	Tools       []ToolDump     `json:"tools"`
}

// DumpCounts totals the catalog.
type DumpCounts struct {
	Categories        int `json:"categories"`
	EnabledCategories int `json:"enabledCategories"`
	Tools             int `json:"tools"`
	EnabledTools      int `json:"enabledTools"`
	VisibleTools      int `json:"visibleTools"`
}

// CategoryDump is one category row of a Dump.
type CategoryDump struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Enabled      bool   `json:"enabled"`
	Order        int    `json:"order"`
	Tools        int    `json:"tools"`
	VisibleTools int    `json:"visibleTools"`
}

// ToolDump is one tool row of a Dump. Enabled is the tool's own flag;
// Visible also accounts for its category.
type ToolDump struct {
	ID         string         `json:"id"`
	CategoryID string         `json:"categoryId"`
	Slug       string         `json:"slug"`
	Name       string         `json:"name"`
	Enabled    bool           `json:"enabled"`
	Visible    bool           `json:"visible"`
	Status     catalog.Status `json:"status,omitempty"`
	URL        string         `json:"url"`
}

// Dump describes the live catalog: counts plus per-category and per-tool
// enablement.
func (r *Registry) Dump() Dump {
	idx := r.Index()
	cat := idx.Catalog()
	st := idx.Stats()

	d := Dump{
		Version:     st.Version,
		Fingerprint: st.Fingerprint,
		Source:      r.src.String(),
		LinkPolicy:  st.LinkPolicy,
		Counts: DumpCounts{
			Categories:        st.Categories,
			EnabledCategories: st.EnabledCategories,
			Tools:             st.Tools,
			VisibleTools:      st.VisibleTools,
		},
	}

	rows := make(map[string]int, len(cat.Categories))
	for _, c := range cat.ListCategories(true) {
		rows[c.ID] = len(d.Categories)
		d.Categories = append(d.Categories, CategoryDump{
			ID:      c.ID,
			Name:    c.Name,
			Enabled: c.Enabled,
			Order:   c.Order,
		})
	}

	for _, t := range cat.ListTools(true) {
		visible := cat.Visible(t)
		if t.Enabled {
			d.Counts.EnabledTools++
		}
		if i, ok := rows[t.CategoryID]; ok {
			d.Categories[i].Tools++
			if visible {
				d.Categories[i].VisibleTools++
			}
		}
		d.Tools = append(d.Tools, ToolDump{
			ID:         t.ID,
			CategoryID: t.CategoryID,
			Slug:       t.Slug,
			Name:       t.Name,
			Enabled:    t.Enabled,
			Visible:    visible,
			Status:     t.Status,
			URL:        t.URLPath(),
		})
	}
	return d
}
