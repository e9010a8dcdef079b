package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jonwraymond/toolcatalog/catalog"
	"github.com/jonwraymond/toolcatalog/discovery"
	"github.com/jonwraymond/toolcatalog/llmproxy"
)

type listResponse struct {
	Tools discovery.Results `json:"tools"`
	Count int               `json:"count"`
}

func listOf(r discovery.Results) listResponse {
	return listResponse{Tools: r, Count: len(r)}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.reg.Index().Version()})
}

func (s *Server) categories(c *gin.Context) {
	pages := s.disc.Categories()
	c.JSON(http.StatusOK, gin.H{"categories": pages, "count": len(pages)})
}

// tools searches when q is present and lists a category otherwise.
// include_disabled only affects category listings. status=coming lists
// upcoming tools instead. pricing, processing, status and api_required
// narrow whichever list was chosen.
func (s *Server) tools(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	filter, err := toolFilterParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var results discovery.Results
	switch {
	case filter.status == catalog.StatusComing:
		results = s.disc.ComingSoon(0)
		if category != "" && category != "all" {
			results = results.FilterByCategory(category)
		}
	case query == "" && category != "" && category != "all":
		includeDisabled, err := boolParam(c, "include_disabled")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		results = s.disc.ListPage(category, includeDisabled)
	default:
		results = s.disc.SearchPage(query, category)
	}
	c.JSON(http.StatusOK, listOf(filter.apply(results)))
}

type toolFilter struct {
	status      catalog.Status
	pricing     catalog.Pricing
	processing  catalog.Processing
	apiRequired bool
}

func toolFilterParams(c *gin.Context) (toolFilter, error) {
	var f toolFilter
	switch v := catalog.Status(c.Query("status")); v {
	case "", catalog.StatusLive, catalog.StatusBeta, catalog.StatusComing, catalog.StatusDevelopment, catalog.StatusMaintenance:
		f.status = v
	default:
		return f, errors.New("unknown status " + strconv.Quote(string(v)))
	}
	switch v := catalog.Pricing(c.Query("pricing")); v {
	case "", catalog.PricingFree, catalog.PricingFreemium, catalog.PricingPaid:
		f.pricing = v
	default:
		return f, errors.New("unknown pricing " + strconv.Quote(string(v)))
	}
	switch v := catalog.Processing(c.Query("processing")); v {
	case "", catalog.ProcessingLocal, catalog.ProcessingServer, catalog.ProcessingHybrid:
		f.processing = v
	default:
		return f, errors.New("unknown processing " + strconv.Quote(string(v)))
	}
	apiRequired, err := boolParam(c, "api_required")
	if err != nil {
		return f, err
	}
	f.apiRequired = apiRequired
	return f, nil
}

func (f toolFilter) apply(r discovery.Results) discovery.Results {
	if f.status != "" {
		r = r.ByStatus(f.status)
	}
	if f.pricing != "" {
		r = r.ByPricing(f.pricing)
	}
	if f.processing != "" {
		r = r.ByProcessing(f.processing)
	}
	if f.apiRequired {
		r = r.APIRequired()
	}
	return r
}

func (s *Server) tool(c *gin.Context) {
	res := s.disc.Route(c.Param("category"), c.Param("slug"))
	if !res.Found {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) featured(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listOf(s.disc.Featured(limit)))
}

func (s *Server) newTools(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listOf(s.disc.NewTools(limit)))
}

func (s *Server) top(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listOf(s.disc.Top(limit, c.Query("category"))))
}

func (s *Server) dump(c *gin.Context) {
	c.JSON(http.StatusOK, s.reg.Dump())
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.reg.Stats())
}

type promptBody struct {
	Text    string            `json:"text" binding:"required"`
	Options map[string]string `json:"options"`
}

func (s *Server) prompt(c *gin.Context) {
	task := c.Param("task")
	if !llmproxy.KnownTask(task) {
		// Unknown names stay out of metric labels.
		s.observePrompt("unknown", "unknown_task")
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown task"})
		return
	}

	var body promptBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.observePrompt(task, "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if ok, retry := s.limiter.Allow(c.ClientIP()); !ok {
		s.observePrompt(task, "rate_limited")
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
		return
	}

	if s.forwarder == nil {
		s.observePrompt(task, "not_configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": llmproxy.ErrNotConfigured.Error()})
		return
	}

	resp, err := s.forwarder.Forward(c.Request.Context(), llmproxy.Request{
		Task:    task,
		Text:    body.Text,
		Options: body.Options,
	})
	if err != nil {
		status, label := promptStatus(err)
		s.observePrompt(task, label)
		if status >= http.StatusInternalServerError {
			s.logger.Warn("prompt forwarding failed",
				zap.String("task", task),
				zap.String("request_id", c.GetString(ctxRequestID)),
				zap.Error(err),
			)
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": publicError(err)})
		return
	}
	s.observePrompt(task, "ok")
	c.JSON(http.StatusOK, resp)
}

func promptStatus(err error) (int, string) {
	switch {
	case errors.Is(err, llmproxy.ErrUnknownTask):
		return http.StatusNotFound, "unknown_task"
	case errors.Is(err, llmproxy.ErrEmptyText):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, llmproxy.ErrNotConfigured):
		return http.StatusServiceUnavailable, "not_configured"
	case errors.Is(err, llmproxy.ErrUpstream):
		return http.StatusBadGateway, "upstream_error"
	default:
		return http.StatusInternalServerError, "error"
	}
}

// publicError hides upstream details from clients.
func publicError(err error) string {
	switch {
	case errors.Is(err, llmproxy.ErrUpstream):
		return llmproxy.ErrUpstream.Error()
	case errors.Is(err, llmproxy.ErrUnknownTask), errors.Is(err, llmproxy.ErrEmptyText), errors.Is(err, llmproxy.ErrNotConfigured):
		return err.Error()
	default:
		return "internal server error"
	}
}

func (s *Server) observePrompt(task, status string) {
	if s.metrics != nil {
		s.metrics.ObservePrompt(task, status)
	}
}

// limitParam parses ?limit=. It writes a 400 and returns false on bad input.
func limitParam(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return n, true
}

func boolParam(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(name + " must be a boolean")
	}
	return b, nil
}
