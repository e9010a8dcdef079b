package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jonwraymond/toolcatalog/discovery"
	"github.com/jonwraymond/toolcatalog/llmproxy"
	"github.com/jonwraymond/toolcatalog/registry"
	"github.com/jonwraymond/toolcatalog/telemetry"
)

const defaultShutdownTimeout = 5 * time.Second

// Options configures a Server. Only the registry passed to New is required.
type Options struct {
	Logger  *zap.Logger
	Metrics *telemetry.Metrics

	// Forwarder serves /api/prompt. Nil answers 503.
	Forwarder *llmproxy.Forwarder
	// Limiter throttles /api/prompt per client IP. Nil uses the defaults.
	Limiter *llmproxy.Limiter

	MaxQueryLen     int
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end of a Registry.
type Server struct {
	reg       *registry.Registry
	disc      *discovery.Discovery
	forwarder *llmproxy.Forwarder
	limiter   *llmproxy.Limiter
	metrics   *telemetry.Metrics
	logger    *zap.Logger
	shutdown  time.Duration
	engine    *gin.Engine
}

// New builds the gin engine and routes for reg.
func New(reg *registry.Registry, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		reg:       reg,
		forwarder: opts.Forwarder,
		limiter:   opts.Limiter,
		metrics:   opts.Metrics,
		logger:    logger.Named("http"),
		shutdown:  opts.ShutdownTimeout,
	}
	if s.limiter == nil {
		s.limiter = llmproxy.NewLimiter(0, 0)
	}
	if s.shutdown <= 0 {
		s.shutdown = defaultShutdownTimeout
	}

	dopts := discovery.Options{MaxQueryLen: opts.MaxQueryLen}
	if opts.Metrics != nil {
		dopts.Observer = opts.Metrics
	}
	s.disc = discovery.New(reg, dopts)
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(requestID())
	router.Use(accessLog(s.logger))
	router.Use(recovery(s.logger))
	if s.metrics != nil {
		router.Use(observe(s.metrics))
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	router.GET("/health", s.health)

	api := router.Group("/api")
	{
		api.GET("/categories", s.categories)
		api.GET("/tools", s.tools)
		api.GET("/tools/:category/:slug", s.tool)
		api.GET("/featured", s.featured)
		api.GET("/new", s.newTools)
		api.GET("/top", s.top)
		api.GET("/catalog", s.dump)
		api.GET("/stats", s.stats)
		api.POST("/prompt/:task", s.prompt)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return router
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("http server forced to shutdown", zap.Error(err))
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}
