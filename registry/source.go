package registry

import (
	"context"

	"github.com/jonwraymond/toolcatalog/catalog"
)

// Source produces the catalog a Registry indexes.
type Source interface {
	Load(ctx context.Context) (catalog.Catalog, error)
	// String names the source in logs, events and dumps.
	String() string
}

// CatalogLoader reads a catalog file. *loader.Loader satisfies it.
type CatalogLoader interface {
	Load(ctx context.Context, path string) (catalog.Catalog, error)
}

type staticSource struct {
	cat  catalog.Catalog
	name string
}

// StaticSource serves a fixed in-memory catalog. Each Load returns a copy.
func StaticSource(cat catalog.Catalog, name string) Source {
	if name == "" {
		name = "static"
	}
	return staticSource{cat: cat.Clone(), name: name}
}

func (s staticSource) Load(ctx context.Context) (catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Catalog{}, err
	}
	return s.cat.Clone(), nil
}

func (s staticSource) String() string { return s.name }

// FileSource loads a catalog file on every Load. It can be watched.
type FileSource struct {
	path   string
	loader CatalogLoader
}

// NewFileSource returns a source reading path with l.
func NewFileSource(path string, l CatalogLoader) *FileSource {
	return &FileSource{path: path, loader: l}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (catalog.Catalog, error) {
	return s.loader.Load(ctx, s.path)
}

// Path returns the watched file path.
func (s *FileSource) Path() string { return s.path }

func (s *FileSource) String() string { return "file:" + s.path }
