package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/toolcatalog/catalog"
	"github.com/jonwraymond/toolcatalog/llmproxy"
	"github.com/jonwraymond/toolcatalog/registry"
	"github.com/jonwraymond/toolcatalog/telemetry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Categories: []catalog.Category{
			{ID: "quick-tools", Name: "Quick Tools", Enabled: true, Order: 1},
			{ID: "business", Name: "Business", Enabled: true, Order: 2},
			{ID: "security", Name: "Security", Enabled: false, Order: 3},
		},
		Tools: []catalog.Tool{
			{ID: "json-format", Slug: "json-format", CategoryID: "quick-tools", Name: "JSON Format",
				Description: "Pretty print JSON", Enabled: true, Featured: true,
				Pricing: catalog.PricingFree, Processing: catalog.ProcessingLocal},
			{ID: "text-case", Slug: "text-case", CategoryID: "quick-tools", Name: "Text Case", Enabled: true, New: true,
				Status: catalog.StatusBeta, Pricing: catalog.PricingFree, Processing: catalog.ProcessingLocal},
			{ID: "qr-code", Slug: "qr-code", CategoryID: "quick-tools", Name: "QR Code",
				Enabled: false, Status: catalog.StatusComing},
			{ID: "ai-resume", Slug: "ai-resume", CategoryID: "business", Name: "AI Resume", Enabled: true, APIRequired: true,
				Pricing: catalog.PricingFreemium, Processing: catalog.ProcessingServer},
			{ID: "vault", Slug: "vault", CategoryID: "security", Name: "Vault", Enabled: true},
		},
	}
}

type fixture struct {
	reg     *registry.Registry
	metrics *telemetry.Metrics
	srv     *Server
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	reg, err := registry.New(context.Background(), registry.StaticSource(testCatalog(), "test"), registry.Options{})
	require.NoError(t, err)
	if opts.Metrics == nil {
		opts.Metrics = telemetry.NewMetrics(nil)
	}
	return fixture{reg: reg, metrics: opts.Metrics, srv: New(reg, opts)}
}

func (f fixture) do(t *testing.T, method, target string, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type toolList struct {
	Tools []struct {
		ID         string `json:"id"`
		CategoryID string `json:"categoryId"`
		Enabled    bool   `json:"enabled"`
	} `json:"tools"`
	Count int `json:"count"`
}

func (l toolList) ids() []string {
	out := make([]string, len(l.Tools))
	for i, t := range l.Tools {
		out[i] = t.ID
	}
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t, Options{})

	w := f.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["version"])
}

func TestRequestID(t *testing.T) {
	f := newFixture(t, Options{})

	w := f.do(t, http.MethodGet, "/health", "")
	assert.Len(t, w.Header().Get(headerRequestID), 36)

	w = f.do(t, http.MethodGet, "/health", "", headerRequestID, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(headerRequestID))
}

func TestCategories(t *testing.T) {
	f := newFixture(t, Options{})

	w := f.do(t, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Categories []struct {
			ID        string `json:"id"`
			ToolCount int    `json:"toolCount"`
		} `json:"categories"`
		Count int `json:"count"`
	}](t, w)
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "quick-tools", body.Categories[0].ID)
	assert.Equal(t, 2, body.Categories[0].ToolCount)
	assert.Equal(t, "business", body.Categories[1].ID)
}

func TestTools(t *testing.T) {
	f := newFixture(t, Options{})

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all visible", "/api/tools", []string{"json-format", "text-case", "ai-resume"}},
		{"category listing", "/api/tools?category=quick-tools", []string{"json-format", "text-case"}},
		{"include disabled", "/api/tools?category=quick-tools&include_disabled=true", []string{"json-format", "text-case", "qr-code"}},
		{"disabled category", "/api/tools?category=security", []string{}},
		{"search", "/api/tools?q=json", []string{"json-format"}},
		{"search within category", "/api/tools?q=json&category=business", []string{}},
		{"search all categories", "/api/tools?q=resume&category=all", []string{"ai-resume"}},
		{"coming soon", "/api/tools?status=coming", []string{"qr-code"}},
		{"coming soon in category", "/api/tools?status=coming&category=business", []string{}},
		{"by status", "/api/tools?status=beta", []string{"text-case"}},
		{"by pricing", "/api/tools?pricing=free", []string{"json-format", "text-case"}},
		{"by processing", "/api/tools?processing=server", []string{"ai-resume"}},
		{"api required", "/api/tools?api_required=true", []string{"ai-resume"}},
		{"filters combine with search", "/api/tools?q=json&pricing=freemium", []string{}},
		{"filters combine with listing", "/api/tools?category=quick-tools&processing=local", []string{"json-format", "text-case"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code)
			body := decode[toolList](t, w)
			assert.Equal(t, tt.want, body.ids())
			assert.Equal(t, len(tt.want), body.Count)
		})
	}

	for _, target := range []string{
		"/api/tools?category=quick-tools&include_disabled=maybe",
		"/api/tools?status=retired",
		"/api/tools?pricing=cheap",
		"/api/tools?processing=cloud",
		"/api/tools?api_required=sometimes",
	} {
		w := f.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestTool(t *testing.T) {
	f := newFixture(t, Options{})

	w := f.do(t, http.MethodGet, "/api/tools/quick-tools/json-format", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Found bool `json:"found"`
		Tool  struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"tool"`
		Category struct {
			Name string `json:"name"`
		} `json:"category"`
	}](t, w)
	assert.True(t, body.Found)
	assert.Equal(t, "JSON Format", body.Tool.Name)
	assert.Equal(t, "/tools/quick-tools/json-format", body.Tool.URL)
	assert.Equal(t, "Quick Tools", body.Category.Name)

	for _, target := range []string{
		"/api/tools/quick-tools/qr-code",
		"/api/tools/security/vault",
		"/api/tools/business/json-format",
		"/api/tools/nope/nope",
	} {
		w := f.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.JSONEq(t, `{"error":"tool not found"}`, w.Body.String())
	}
}

func TestShelves(t *testing.T) {
	f := newFixture(t, Options{})

	body := decode[toolList](t, f.do(t, http.MethodGet, "/api/featured", ""))
	assert.Equal(t, []string{"json-format"}, body.ids())

	body = decode[toolList](t, f.do(t, http.MethodGet, "/api/new", ""))
	assert.Equal(t, []string{"text-case"}, body.ids())

	body = decode[toolList](t, f.do(t, http.MethodGet, "/api/top?limit=2", ""))
	assert.Equal(t, []string{"json-format", "text-case"}, body.ids())

	body = decode[toolList](t, f.do(t, http.MethodGet, "/api/top?category=business", ""))
	assert.Equal(t, []string{"ai-resume"}, body.ids())

	for _, target := range []string{"/api/top?limit=-1", "/api/featured?limit=ten"} {
		assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, target, "").Code, target)
	}
}

func TestCatalogAndStats(t *testing.T) {
	f := newFixture(t, Options{})

	dump := decode[registry.Dump](t, f.do(t, http.MethodGet, "/api/catalog", ""))
	assert.Equal(t, "test", dump.Source)
	assert.Equal(t, 5, dump.Counts.Tools)
	assert.Equal(t, 3, dump.Counts.VisibleTools)

	st := decode[registry.Stats](t, f.do(t, http.MethodGet, "/api/stats", ""))
	assert.Equal(t, uint64(1), st.Index.Version)
	assert.Equal(t, uint64(1), st.Reloads)
	assert.Equal(t, 3, st.Index.LiveTools)
	assert.Equal(t, 1, st.Index.BetaTools)
	assert.Equal(t, 1, st.Index.ComingTools)
	assert.Equal(t, 1, st.Index.FeaturedTools)
	assert.Equal(t, 1, st.Index.NewTools)
}

func TestNoRoute(t *testing.T) {
	f := newFixture(t, Options{})
	w := f.do(t, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, Options{})

	f.do(t, http.MethodGet, "/api/tools/quick-tools/json-format", "")
	f.do(t, http.MethodGet, "/api/tools/quick-tools/missing", "")

	w := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `toolcatalog_route_lookups_total{result="found"} 1`)
	assert.Contains(t, body, `toolcatalog_route_lookups_total{result="not_found"} 1`)
	assert.Contains(t, body, `route="/api/tools/:category/:slug"`)
}

func newOpenAIStub(t *testing.T, status int) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"secret upstream detail"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"stub",
			"choices":[{"index":0,"message":{"role":"assistant","content":"LEGITIMATE"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}}`))
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1"
}

func TestPrompt(t *testing.T) {
	fwd := llmproxy.NewForwarder(llmproxy.Config{BaseURL: newOpenAIStub(t, http.StatusOK), APIKey: "sk"}, nil)
	f := newFixture(t, Options{Forwarder: fwd, Limiter: llmproxy.NewLimiter(2, time.Hour)})

	w := f.do(t, http.MethodPost, "/api/prompt/spam-check", `{"text":"You won a prize"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[llmproxy.Response](t, w)
	assert.Equal(t, "LEGITIMATE", resp.Content)
	assert.Equal(t, "stub", resp.Model)

	w = f.do(t, http.MethodPost, "/api/prompt/translate", `{"text":"hola"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/api/prompt/summarize", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/prompt/summarize", `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/prompt/summarize", `{"text":"third request"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
}

func TestPrompt_UpstreamAndConfiguration(t *testing.T) {
	fwd := llmproxy.NewForwarder(llmproxy.Config{BaseURL: newOpenAIStub(t, http.StatusInternalServerError), APIKey: "sk"}, nil)
	f := newFixture(t, Options{Forwarder: fwd})

	w := f.do(t, http.MethodPost, "/api/prompt/debate", `{"text":"Tabs beat spaces","options":{"style":"kind"}}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "secret upstream detail")

	unconfigured := newFixture(t, Options{Forwarder: llmproxy.NewForwarder(llmproxy.Config{}, nil)})
	w = unconfigured.do(t, http.MethodPost, "/api/prompt/summarize", `{"text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	none := newFixture(t, Options{})
	w = none.do(t, http.MethodPost, "/api/prompt/summarize", `{"text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReloadIsVisible(t *testing.T) {
	src := &swapSource{cat: testCatalog()}
	reg, err := registry.New(context.Background(), src, registry.Options{})
	require.NoError(t, err)
	srv := New(reg, Options{})

	get := func(target string) int {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w.Code
	}
	require.Equal(t, http.StatusOK, get("/api/tools/quick-tools/json-format"))

	next := testCatalog()
	next.Tools[0].Enabled = false
	src.cat = next
	require.NoError(t, reg.Reload(context.Background()))

	assert.Equal(t, http.StatusNotFound, get("/api/tools/quick-tools/json-format"))
}

type swapSource struct{ cat catalog.Catalog }

func (s *swapSource) Load(context.Context) (catalog.Catalog, error) { return s.cat.Clone(), nil }
func (s *swapSource) String() string                                { return "swap" }

func TestServe_GracefulShutdown(t *testing.T) {
	f := newFixture(t, Options{ShutdownTimeout: time.Second})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRecovery(t *testing.T) {
	f := newFixture(t, Options{})
	f.srv.engine.GET("/panic", func(*gin.Context) { panic("boom") })

	w := f.do(t, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("internal server error")))
}
