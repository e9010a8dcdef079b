package loader

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/jonwraymond/toolcatalog/catalog"
)

const slugPattern = `^[a-z0-9]+(?:-[a-z0-9]+)*$`

// compiledSchema pairs the published schema with its resolved form.
type compiledSchema struct {
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
}

var schemaOnce = sync.OnceValues(buildSchema)

// Schema returns the JSON Schema every catalog document must satisfy.
// The returned value is shared; callers must not modify it.
func Schema() (*jsonschema.Schema, error) {
	c, err := schemaOnce()
	if err != nil {
		return nil, err
	}
	return c.schema, nil
}

func resolvedSchema() (*jsonschema.Resolved, error) {
	c, err := schemaOnce()
	if err != nil {
		return nil, err
	}
	return c.resolved, nil
}

func buildSchema() (compiledSchema, error) {
	s, err := jsonschema.For[rawCatalog](nil)
	if err != nil {
		return compiledSchema{}, fmt.Errorf("derive catalog schema: %w", err)
	}
	s.Title = "Tool catalog"
	disallowUnknown(s)

	if cat := itemProps(s, "categories"); cat != nil {
		setPattern(cat, "id", slugPattern)
		setEnum(cat, "badge", catalog.BadgeNew, catalog.BadgeComingSoon, catalog.BadgeBeta, catalog.BadgeHot, catalog.BadgePopular)
	}
	if tool := itemProps(s, "tools"); tool != nil {
		setPattern(tool, "slug", slugPattern)
		setPattern(tool, "category", slugPattern)
		setEnum(tool, "status", catalog.StatusLive, catalog.StatusBeta, catalog.StatusComing, catalog.StatusDevelopment, catalog.StatusMaintenance)
		setEnum(tool, "pricing", catalog.PricingFree, catalog.PricingFreemium, catalog.PricingPaid)
		setEnum(tool, "processing", catalog.ProcessingLocal, catalog.ProcessingServer, catalog.ProcessingHybrid)
	}

	resolved, err := s.Resolve(nil)
	if err != nil {
		return compiledSchema{}, fmt.Errorf("resolve catalog schema: %w", err)
	}
	return compiledSchema{schema: s, resolved: resolved}, nil
}

// disallowUnknown rejects additional properties on every object schema.
func disallowUnknown(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	if len(s.Properties) > 0 {
		s.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
	}
	for _, p := range s.Properties {
		disallowUnknown(p)
	}
	disallowUnknown(s.Items)
}

func itemProps(s *jsonschema.Schema, field string) map[string]*jsonschema.Schema {
	p, ok := s.Properties[field]
	if !ok || p.Items == nil {
		return nil
	}
	return p.Items.Properties
}

func setPattern(props map[string]*jsonschema.Schema, field, pattern string) {
	if p, ok := props[field]; ok {
		p.Pattern = pattern
	}
}

func setEnum[T ~string](props map[string]*jsonschema.Schema, field string, values ...T) {
	p, ok := props[field]
	if !ok {
		return
	}
	p.Enum = make([]any, len(values))
	for i, v := range values {
		p.Enum[i] = string(v)
	}
}

// validateDocument checks a decoded document against the schema. doc must
// already be in JSON value form (maps, slices, strings, float64, bool, nil).
func validateDocument(doc any) error {
	resolved, err := resolvedSchema()
	if err != nil {
		return err
	}
	if err := resolved.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return nil
}

// SchemaJSON returns the schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}
