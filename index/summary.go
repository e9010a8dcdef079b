package index

import (
	"slices"
	"time"

	"github.com/jonwraymond/toolcatalog/catalog"
)

// MaxShortDescriptionLen is the maximum length in runes of ShortDescription.
const MaxShortDescriptionLen = 120

// Summary is the renderable view of a tool handed to presentation code.
type Summary struct {
	ID               string             `json:"id"`
	Slug             string             `json:"slug"`
	CategoryID       string             `json:"categoryId"`
	CategoryName     string             `json:"categoryName"`
	Name             string             `json:"name"`
	ShortDescription string             `json:"shortDescription,omitempty"`
	Description      string             `json:"description,omitempty"`
	Icon             string             `json:"icon,omitempty"`
	Tags             []string           `json:"tags,omitempty"`
	Status           catalog.Status     `json:"status,omitempty"`
	Featured         bool               `json:"featured,omitempty"`
	New              bool               `json:"new,omitempty"`
	APIRequired      bool               `json:"apiRequired,omitempty"`
	Pricing          catalog.Pricing    `json:"pricing,omitempty"`
	Processing       catalog.Processing `json:"processing,omitempty"`
	Users            int                `json:"users,omitempty"`
	URL              string             `json:"url"`
	Enabled          bool               `json:"enabled"`
	UpdatedAt        time.Time          `json:"updatedAt,omitzero"`
}

func newSummary(tool catalog.Tool, cat catalog.Category, visible bool) Summary {
	updated := tool.UpdatedAt
	if updated.IsZero() {
		updated = tool.CreatedAt
	}
	return Summary{
		ID:               tool.ID,
		Slug:             tool.Slug,
		CategoryID:       tool.CategoryID,
		CategoryName:     cat.Name,
		Name:             tool.Name,
		ShortDescription: ShortDescription(tool.Description),
		Description:      tool.Description,
		Icon:             tool.Icon,
		Tags:             slices.Clone(tool.Tags),
		Status:           tool.Status,
		Featured:         tool.Featured,
		New:              tool.New,
		APIRequired:      tool.APIRequired,
		Pricing:          tool.Pricing,
		Processing:       tool.Processing,
		Users:            tool.Users,
		URL:              tool.URLPath(),
		Enabled:          visible,
		UpdatedAt:        updated,
	}
}

// clone returns a copy that shares no slices with s.
func (s Summary) clone() Summary {
	s.Tags = slices.Clone(s.Tags)
	return s
}

// ShortDescription truncates desc to MaxShortDescriptionLen runes, replacing
// the last rune with an ellipsis when truncation happens.
func ShortDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) <= MaxShortDescriptionLen {
		return desc
	}
	return string(runes[:MaxShortDescriptionLen-1]) + "…"
}
