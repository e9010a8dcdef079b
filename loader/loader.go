package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/toolcatalog/catalog"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatYAML, FormatTOML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Loader reads and validates catalog files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader returns a Loader logging through logger. A nil logger is
// replaced by a no-op logger.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		return &Loader{logger: zap.NewNop()}
	}
	return &Loader{logger: logger.Named("loader")}
}

// Load reads the catalog file at path.
func (l *Loader) Load(ctx context.Context, path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Catalog{}, ErrPathRequired
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return catalog.Catalog{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	cat, err := l.Decode(ctx, data, format)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	l.logger.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("categories", len(cat.Categories)),
		zap.Int("tools", len(cat.Tools)),
	)
	return cat, nil
}

// Decode parses, validates and normalizes a catalog document.
func (l *Loader) Decode(ctx context.Context, data []byte, format Format) (catalog.Catalog, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return catalog.Catalog{}, err
	}

	missing := make(map[string]struct{})
	doc = expandEnv(doc, missing)
	if names := missingList(missing); len(names) > 0 {
		l.logger.Warn("missing environment variables in catalog", zap.Strings("missing", names))
	}

	// Round-trip through JSON so every format validates as the same value
	// shapes (float64 numbers, RFC 3339 strings for TOML datetimes).
	encoded, err := json.Marshal(doc)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("encode catalog document: %w", err)
	}
	var generic any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return catalog.Catalog{}, fmt.Errorf("decode catalog document: %w", err)
	}
	if err := validateDocument(generic); err != nil {
		return catalog.Catalog{}, err
	}

	var raw rawCatalog
	if err := json.Unmarshal(encoded, &raw); err != nil {
		return catalog.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return catalog.Catalog{}, err
	}

	cat, err := normalize(raw)
	if err != nil {
		return catalog.Catalog{}, err
	}
	if err := cat.Validate(); err != nil {
		return catalog.Catalog{}, err
	}
	return cat, nil
}

func decodeDocument(data []byte, format Format) (any, error) {
	var doc any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", format, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func normalize(raw rawCatalog) (catalog.Catalog, error) {
	var errs []error
	cat := catalog.Catalog{
		Categories: make([]catalog.Category, 0, len(raw.Categories)),
		Tools:      make([]catalog.Tool, 0, len(raw.Tools)),
	}

	for _, rc := range raw.Categories {
		enabled := true
		if rc.Enabled != nil {
			enabled = *rc.Enabled
		}
		cat.Categories = append(cat.Categories, catalog.Category{
			ID:          strings.TrimSpace(rc.ID),
			Name:        strings.TrimSpace(rc.Name),
			ShortName:   strings.TrimSpace(rc.ShortName),
			Tagline:     strings.TrimSpace(rc.Tagline),
			Description: strings.TrimSpace(rc.Description),
			Icon:        rc.Icon,
			Badge:       catalog.Badge(strings.TrimSpace(rc.Badge)),
			Enabled:     enabled,
			Order:       rc.Order,
		})
	}

	for i, rt := range raw.Tools {
		status := catalog.Status(strings.TrimSpace(rt.Status))
		enabled := catalog.DefaultEnabled(status)
		if rt.Enabled != nil {
			enabled = *rt.Enabled
		}
		slug := strings.TrimSpace(rt.Slug)
		id := strings.TrimSpace(rt.ID)
		if id == "" {
			id = slug
		}

		created, err := parseTimestamp(rt.CreatedAt)
		if err != nil {
			errs = append(errs, fmt.Errorf("tools[%d]: %w: createdAt: %w", i, ErrNormalize, err))
		}
		updated, err := parseTimestamp(rt.UpdatedAt)
		if err != nil {
			errs = append(errs, fmt.Errorf("tools[%d]: %w: updatedAt: %w", i, ErrNormalize, err))
		}
		users, err := catalog.ParseUsers(rt.Users)
		if err != nil {
			errs = append(errs, fmt.Errorf("tools[%d]: %w: users: %w", i, ErrNormalize, err))
		}

		cat.Tools = append(cat.Tools, catalog.Tool{
			ID:          id,
			Slug:        slug,
			CategoryID:  strings.TrimSpace(rt.Category),
			Name:        strings.TrimSpace(rt.Name),
			Description: strings.TrimSpace(rt.Description),
			Icon:        rt.Icon,
			Tags:        normalizeTags(rt.Tags),
			Enabled:     enabled,
			Featured:    rt.Featured,
			New:         rt.New,
			Status:      status,
			APIRequired: rt.APIRequired,
			Pricing:     catalog.Pricing(strings.TrimSpace(rt.Pricing)),
			Processing:  catalog.Processing(strings.TrimSpace(rt.Processing)),
			Users:       users,
			CreatedAt:   created,
			UpdatedAt:   updated,
		})
	}

	if len(errs) > 0 {
		return catalog.Catalog{}, errors.Join(errs...)
	}
	return cat, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// timestampLayouts are tried in order. Local date-times come from TOML and
// are read as UTC.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateTime, time.DateOnly, "2006-01"}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an RFC 3339 timestamp, date or year-month", s)
}

// Encode writes cat to w in the given format. The output loads back into an
// equal catalog.
func Encode(w io.Writer, cat catalog.Catalog, format Format) error {
	raw := toRaw(cat)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(raw); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func toRaw(cat catalog.Catalog) rawCatalog {
	raw := rawCatalog{
		Categories: make([]rawCategory, 0, len(cat.Categories)),
		Tools:      make([]rawTool, 0, len(cat.Tools)),
	}
	for _, c := range cat.Categories {
		raw.Categories = append(raw.Categories, rawCategory{
			ID:          c.ID,
			Name:        c.Name,
			ShortName:   c.ShortName,
			Tagline:     c.Tagline,
			Description: c.Description,
			Icon:        c.Icon,
			Badge:       string(c.Badge),
			Enabled:     &c.Enabled,
			Order:       c.Order,
		})
	}
	for _, t := range cat.Tools {
		raw.Tools = append(raw.Tools, rawTool{
			ID:          t.ID,
			Slug:        t.Slug,
			Category:    t.CategoryID,
			Name:        t.Name,
			Description: t.Description,
			Icon:        t.Icon,
			Tags:        t.Tags,
			Enabled:     &t.Enabled,
			Featured:    t.Featured,
			New:         t.New,
			Status:      string(t.Status),
			APIRequired: t.APIRequired,
			Pricing:     string(t.Pricing),
			Processing:  string(t.Processing),
			Users:       catalog.FormatUsers(t.Users),
			CreatedAt:   formatTimestamp(t.CreatedAt),
			UpdatedAt:   formatTimestamp(t.UpdatedAt),
		})
	}
	return raw
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
