package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/toolcatalog/discovery"
	"github.com/jonwraymond/toolcatalog/llmproxy"
	"github.com/jonwraymond/toolcatalog/registry"
	"github.com/jonwraymond/toolcatalog/server"
	"github.com/jonwraymond/toolcatalog/telemetry"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.Env == telemetry.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := telemetry.NewMetrics(nil)
	reg, closeSearcher, err := a.registry(ctx, a.source(""), metrics)
	if err != nil {
		return err
	}
	defer closeSearcher()

	srv := server.New(reg, server.Options{
		Logger:  a.logger,
		Metrics: metrics,
		Forwarder: llmproxy.NewForwarder(llmproxy.Config{
			BaseURL: a.cfg.LLM.BaseURL,
			APIKey:  a.cfg.LLM.APIKey,
			Model:   a.cfg.LLM.Model,
			Timeout: a.cfg.LLM.Timeout,
		}, a.logger),
		Limiter:         llmproxy.NewLimiter(a.cfg.LLM.RateLimit, a.cfg.LLM.RateWindow),
		MaxQueryLen:     a.cfg.Search.MaxQueryLen,
		ShutdownTimeout: a.cfg.HTTP.ShutdownTimeout,
	})
	if !a.cfg.LLMEnabled() {
		a.logger.Info("llm api key not set, prompt endpoints will answer 503")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, a.cfg.HTTP.Address)
	})
	if a.cfg.Catalog.Watch {
		g.Go(func() error {
			return reg.Watch(ctx)
		})
	}
	err = g.Wait()
	if err != nil {
		a.logger.Error("serve failed", zap.Error(err))
	}
	return err
}

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg, closeSearcher, err := a.registry(ctx, a.source(""), nil)
			if err != nil {
				return err
			}
			defer closeSearcher()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return registry.ServeStdio(ctx, reg,
					registry.ServerInfo{Name: a.cfg.MCP.Name, Version: version},
					discovery.Options{MaxQueryLen: a.cfg.Search.MaxQueryLen},
				)
			})
			if a.cfg.Catalog.Watch {
				g.Go(func() error { return reg.Watch(ctx) })
			}
			return g.Wait()
		},
	}
}
