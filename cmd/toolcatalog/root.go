package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonwraymond/toolcatalog/catalog/builtin"
	"github.com/jonwraymond/toolcatalog/config"
	"github.com/jonwraymond/toolcatalog/index"
	"github.com/jonwraymond/toolcatalog/loader"
	"github.com/jonwraymond/toolcatalog/registry"
	"github.com/jonwraymond/toolcatalog/search"
	"github.com/jonwraymond/toolcatalog/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "toolcatalog",
		Short:         "Tool catalog registry and routing service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			log, err := telemetry.NewLogger(cfg.Env)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			a.logger = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(a),
		newMCPCmd(a),
		newValidateCmd(a),
		newDumpCmd(a),
		newSchemaCmd(),
	)
	return root
}

// source picks the catalog file from path or configuration, falling back to
// the builtin catalog.
func (a *app) source(path string) registry.Source {
	if path == "" {
		path = a.cfg.Catalog.Path
	}
	if path == "" {
		return registry.StaticSource(builtin.Catalog(), "builtin")
	}
	return registry.NewFileSource(path, loader.NewLoader(a.logger))
}

// searcher returns the configured search strategy and its cleanup.
func (a *app) searcher() (index.Searcher, func()) {
	if a.cfg.Search.Strategy != config.SearchBM25 {
		return nil, func() {}
	}
	s := search.NewBM25Searcher(search.BM25Config{})
	return s, func() { _ = s.Close() }
}

func (a *app) registry(ctx context.Context, src registry.Source, observer registry.Observer) (*registry.Registry, func(), error) {
	searcher, closeSearcher := a.searcher()
	opts := registry.Options{
		Logger:     a.logger,
		Searcher:   searcher,
		LinkPolicy: a.cfg.LinkPolicy(),
		Observer:   observer,
	}
	reg, err := registry.New(ctx, src, opts)
	if err != nil {
		closeSearcher()
		return nil, nil, err
	}
	return reg, closeSearcher, nil
}
