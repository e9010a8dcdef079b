// Package registry owns the live catalog index and keeps it current.
//
// A Registry loads a catalog from a Source, builds an index.Index and
// publishes it through an atomic pointer. Readers call Index and get an
// immutable snapshot without locking. Reload and Watch build a complete
// replacement from the source and swap it in only when it is valid, so a
// broken edit to the catalog file never takes the site down.
//
// # Sources
//
//   - StaticSource serves an in-memory catalog, usually builtin.Catalog().
//   - FileSource reads a YAML, TOML or JSON file through a loader.Loader
//     and can be watched for changes.
//
// # Usage
//
//	l := loader.NewLoader(logger)
//	reg, err := registry.New(ctx, registry.NewFileSource("catalog.yaml", l), registry.Options{
//	    Logger: logger,
//	})
//	if err != nil {
//	    return err // the catalog failed validation
//	}
//	go reg.Watch(ctx)
//
//	tool, ok := reg.Index().Resolve("quick-tools", "json-format")
//
// # MCP
//
// NewMCPServer exposes listing, resolution, search and stats as MCP tools;
// ServeStdio runs it over stdin/stdout.
package registry
