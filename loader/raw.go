package loader

// rawCatalog is the on-disk document shape. The JSON Schema published by
// Schema is derived from it, so field tags double as the file format.
type rawCatalog struct {
	Categories []rawCategory `json:"categories" yaml:"categories" toml:"categories"`
	Tools      []rawTool     `json:"tools" yaml:"tools" toml:"tools"`
}

type rawCategory struct {
	ID          string `json:"id" yaml:"id" toml:"id" jsonschema:"unique category identifier, used as the first URL segment"`
	Name        string `json:"name" yaml:"name" toml:"name" jsonschema:"display name"`
	ShortName   string `json:"shortName,omitempty" yaml:"shortName,omitempty" toml:"shortName,omitempty"`
	Tagline     string `json:"tagline,omitempty" yaml:"tagline,omitempty" toml:"tagline,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Badge       string `json:"badge,omitempty" yaml:"badge,omitempty" toml:"badge,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty" jsonschema:"defaults to true"`
	Order       int    `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty" jsonschema:"listing position, ascending"`
}

type rawTool struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty" jsonschema:"globally unique identifier, defaults to the slug"`
	Slug        string   `json:"slug" yaml:"slug" toml:"slug" jsonschema:"URL segment, unique within the category"`
	Category    string   `json:"category" yaml:"category" toml:"category" jsonschema:"id of the owning category"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Enabled     *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty" jsonschema:"defaults from status"`
	Featured    bool     `json:"featured,omitempty" yaml:"featured,omitempty" toml:"featured,omitempty"`
	New         bool     `json:"new,omitempty" yaml:"new,omitempty" toml:"new,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	APIRequired bool     `json:"apiRequired,omitempty" yaml:"apiRequired,omitempty" toml:"apiRequired,omitempty"`
	Pricing     string   `json:"pricing,omitempty" yaml:"pricing,omitempty" toml:"pricing,omitempty"`
	Processing  string   `json:"processing,omitempty" yaml:"processing,omitempty" toml:"processing,omitempty"`
	Users       string   `json:"users,omitempty" yaml:"users,omitempty" toml:"users,omitempty" jsonschema:"user count such as 890 or 2.1k"`
	CreatedAt   string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty" toml:"createdAt,omitempty" jsonschema:"RFC 3339 timestamp, date or year-month"`
	UpdatedAt   string   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty" toml:"updatedAt,omitempty" jsonschema:"RFC 3339 timestamp, date or year-month"`
}
