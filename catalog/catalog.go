package catalog

import (
	"cmp"
	"slices"
	"time"
)

// Status is the lifecycle label shown next to a tool.
type Status string

const (
	StatusLive        Status = "live"
	StatusBeta        Status = "beta"
	StatusComing      Status = "coming"
	StatusDevelopment Status = "development"
	StatusMaintenance Status = "maintenance"
)

// Pricing describes how a tool is billed.
type Pricing string

const (
	PricingFree     Pricing = "free"
	PricingFreemium Pricing = "freemium"
	PricingPaid     Pricing = "paid"
)

// Processing describes where a tool processes user data.
type Processing string

const (
	ProcessingLocal  Processing = "local"
	ProcessingServer Processing = "server"
	ProcessingHybrid Processing = "hybrid"
)

// Badge is an optional marketing label on a category.
type Badge string

const (
	BadgeNew        Badge = "NEW"
	BadgeComingSoon Badge = "COMING SOON"
	BadgeBeta       Badge = "BETA"
	BadgeHot        Badge = "HOT"
	BadgePopular    Badge = "POPULAR"
)

// Category groups tools on listing pages and in URLs.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName,omitempty"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Badge       Badge  `json:"badge,omitempty"`
	Enabled     bool   `json:"enabled"`
	Order       int    `json:"order"`
}

// Tool is a single catalog entry. (CategoryID, Slug) is its routing key.
type Tool struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	CategoryID  string     `json:"categoryId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Enabled     bool       `json:"enabled"`
	Featured    bool       `json:"featured,omitempty"`
	New         bool       `json:"new,omitempty"`
	Status      Status     `json:"status,omitempty"`
	APIRequired bool       `json:"apiRequired,omitempty"`
	Pricing     Pricing    `json:"pricing,omitempty"`
	Processing  Processing `json:"processing,omitempty"`
	Users       int        `json:"users,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitzero"`
	UpdatedAt   time.Time  `json:"updatedAt,omitzero"`
}

// URLPath returns the page path the routing layer serves the tool under.
func (t Tool) URLPath() string {
	return URLPath(t.CategoryID, t.Slug)
}

// URLPath builds the page path for a (category, slug) routing key.
func URLPath(categoryID, slug string) string {
	return "/tools/" + categoryID + "/" + slug
}

// DefaultEnabled reports whether a tool with the given status is enabled when
// the source does not say so explicitly.
func DefaultEnabled(s Status) bool {
	switch s {
	case "", StatusLive, StatusBeta:
		return true
	default:
		return false
	}
}

// Catalog is the full static set of categories and tools, in declared order.
type Catalog struct {
	Categories []Category `json:"categories"`
	Tools      []Tool     `json:"tools"`
}

// Category returns the category with the given id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// ListCategories returns categories sorted by Order. Disabled categories are
// dropped unless includeDisabled is set.
func (c Catalog) ListCategories(includeDisabled bool) []Category {
	out := make([]Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if !includeDisabled && !cat.Enabled {
			continue
		}
		out = append(out, cat)
	}
	slices.SortStableFunc(out, func(a, b Category) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// ListTools returns tools sorted by category order, then declared position.
// Unless includeDisabled is set, tools that are disabled or that sit in a
// disabled category are dropped.
func (c Catalog) ListTools(includeDisabled bool) []Tool {
	rank := c.categoryRanks()

	out := make([]Tool, 0, len(c.Tools))
	for _, tool := range c.Tools {
		if !includeDisabled && !c.visible(tool) {
			continue
		}
		out = append(out, tool)
	}
	slices.SortStableFunc(out, func(a, b Tool) int {
		return cmp.Compare(rankOf(rank, a.CategoryID), rankOf(rank, b.CategoryID))
	})
	return out
}

// Visible reports whether a tool is enabled and belongs to an enabled category.
func (c Catalog) Visible(tool Tool) bool {
	return c.visible(tool)
}

func (c Catalog) visible(tool Tool) bool {
	if !tool.Enabled {
		return false
	}
	cat, ok := c.Category(tool.CategoryID)
	return ok && cat.Enabled
}

// categoryRanks maps category id to its position in ordered listing.
func (c Catalog) categoryRanks() map[string]int {
	ordered := c.ListCategories(true)
	rank := make(map[string]int, len(ordered))
	for i, cat := range ordered {
		if _, seen := rank[cat.ID]; !seen {
			rank[cat.ID] = i
		}
	}
	return rank
}

// rankOf places tools with unknown categories after every known one.
func rankOf(rank map[string]int, id string) int {
	if r, ok := rank[id]; ok {
		return r
	}
	return len(rank)
}

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Categories: slices.Clone(c.Categories),
		Tools:      slices.Clone(c.Tools),
	}
	for i := range out.Tools {
		out.Tools[i].Tags = slices.Clone(out.Tools[i].Tags)
	}
	return out
}
