package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonwraymond/toolcatalog/catalog"
	"github.com/jonwraymond/toolcatalog/index"
	"github.com/jonwraymond/toolcatalog/loader"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Categories: []catalog.Category{
			{ID: "quick-tools", Name: "Quick Tools", Enabled: true, Order: 1},
			{ID: "security", Name: "Security", Enabled: false, Order: 2},
		},
		Tools: []catalog.Tool{
			{ID: "json-format", Slug: "json-format", CategoryID: "quick-tools", Name: "JSON Format",
				Description: "Pretty print JSON", Enabled: true},
			{ID: "text-case", Slug: "text-case", CategoryID: "quick-tools", Name: "Text Case", Enabled: true},
			{ID: "qr-code", Slug: "qr-code", CategoryID: "quick-tools", Name: "QR Code",
				Enabled: false, Status: catalog.StatusComing},
			{ID: "vault", Slug: "vault", CategoryID: "security", Name: "Vault", Enabled: true},
		},
	}
}

// mutableSource serves whatever catalog or error it currently holds.
type mutableSource struct {
	mu  sync.Mutex
	cat catalog.Catalog
	err error
}

func (s *mutableSource) Load(ctx context.Context) (catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return catalog.Catalog{}, s.err
	}
	return s.cat.Clone(), nil
}

func (s *mutableSource) String() string { return "mutable" }

func (s *mutableSource) set(cat catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat, s.err = cat, err
}

type recordingObserver struct {
	mu       sync.Mutex
	reloads  []string
	failures int
	total    int
	visible  int
}

func (o *recordingObserver) ObserveReload(source string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reloads = append(o.reloads, source)
	if err != nil {
		o.failures++
	}
}

func (o *recordingObserver) SetToolCounts(total, visible int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.total, o.visible = total, visible
}

func TestNew(t *testing.T) {
	obs := &recordingObserver{}
	reg, err := New(context.Background(), StaticSource(testCatalog(), ""), Options{Observer: obs})
	require.NoError(t, err)

	idx := reg.Index()
	require.Equal(t, uint64(1), idx.Version())
	require.Equal(t, index.LinkEnabledOnly, idx.LinkPolicy())

	tool, ok := idx.Resolve("quick-tools", "json-format")
	require.True(t, ok)
	require.Equal(t, "JSON Format", tool.Name)

	require.Equal(t, []string{ChangeStartup}, obs.reloads)
	require.Equal(t, 4, obs.total)
	require.Equal(t, 2, obs.visible)
	require.Equal(t, "static", reg.Source().String())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(context.Background(), nil, Options{})
	require.ErrorIs(t, err, ErrNilSource)

	bad := testCatalog()
	bad.Tools[0].CategoryID = "missing"
	_, err = New(context.Background(), StaticSource(bad, "bad"), Options{})
	require.ErrorIs(t, err, index.ErrConfig)
	require.ErrorIs(t, err, catalog.ErrDanglingCategory)

	src := &mutableSource{}
	src.set(catalog.Catalog{}, errors.New("disk on fire"))
	_, err = New(context.Background(), src, Options{})
	require.ErrorContains(t, err, "disk on fire")
	require.ErrorContains(t, err, "load catalog from mutable")
}

func TestReload_SwapsIndex(t *testing.T) {
	src := &mutableSource{cat: testCatalog()}
	reg, err := New(context.Background(), src, Options{})
	require.NoError(t, err)

	var events []ChangeEvent
	unsubscribe := reg.OnChange(func(ev ChangeEvent) { events = append(events, ev) })
	defer unsubscribe()

	before := reg.Index()

	next := testCatalog()
	next.Tools[2].Enabled = true
	src.set(next, nil)
	require.NoError(t, reg.Reload(context.Background()))

	after := reg.Index()
	require.Equal(t, uint64(2), after.Version())
	_, ok := after.Resolve("quick-tools", "qr-code")
	require.True(t, ok, "newly enabled tool must resolve")

	_, ok = before.Resolve("quick-tools", "qr-code")
	require.False(t, ok, "old snapshot must stay unchanged")

	require.Len(t, events, 1)
	require.Equal(t, ChangeManual, events[0].Source)
	require.Equal(t, uint64(2), events[0].Version)
	require.Equal(t, 3, events[0].VisibleTools)
	require.Equal(t, after.Fingerprint(), events[0].Fingerprint)
}

func TestReload_UnchangedIsNoop(t *testing.T) {
	src := &mutableSource{cat: testCatalog()}
	reg, err := New(context.Background(), src, Options{})
	require.NoError(t, err)

	called := false
	reg.OnChange(func(ChangeEvent) { called = true })

	before := reg.Index()
	require.NoError(t, reg.Reload(context.Background()))
	require.Same(t, before, reg.Index())
	require.False(t, called)
	require.Equal(t, uint64(2), reg.Stats().Reloads)
}

func TestReload_FailureKeepsIndex(t *testing.T) {
	obs := &recordingObserver{}
	src := &mutableSource{cat: testCatalog()}
	reg, err := New(context.Background(), src, Options{Observer: obs})
	require.NoError(t, err)
	before := reg.Index()

	broken := testCatalog()
	broken.Tools[1].Slug = "json-format"
	src.set(broken, nil)

	err = reg.Reload(context.Background())
	require.ErrorIs(t, err, catalog.ErrDuplicateSlug)
	require.Same(t, before, reg.Index())

	st := reg.Stats()
	require.Equal(t, uint64(1), st.ReloadFailures)
	require.Contains(t, st.LastError, "duplicate")
	require.Equal(t, 1, obs.failures)

	src.set(testCatalog(), nil)
	require.NoError(t, reg.Reload(context.Background()))
	require.Empty(t, reg.Stats().LastError)
}

func TestOnChange_Unsubscribe(t *testing.T) {
	src := &mutableSource{cat: testCatalog()}
	reg, err := New(context.Background(), src, Options{})
	require.NoError(t, err)

	count := 0
	unsubscribe := reg.OnChange(func(ChangeEvent) { count++ })

	next := testCatalog()
	next.Tools[0].Name = "JSON Beautify"
	src.set(next, nil)
	require.NoError(t, reg.Reload(context.Background()))

	unsubscribe()
	unsubscribe()

	next.Tools[0].Name = "JSON Pretty"
	src.set(next, nil)
	require.NoError(t, reg.Reload(context.Background()))

	require.Equal(t, 1, count)
	require.Equal(t, uint64(3), reg.Index().Version())
}

func TestKeepAlivePolicy(t *testing.T) {
	reg, err := New(context.Background(), StaticSource(testCatalog(), ""), Options{LinkPolicy: index.LinkKeepAlive})
	require.NoError(t, err)

	tool, ok := reg.Index().Resolve("quick-tools", "qr-code")
	require.True(t, ok)
	require.False(t, tool.Enabled)
}

func TestStaticSource_ReturnsCopies(t *testing.T) {
	cat := testCatalog()
	src := StaticSource(cat, "builtin")
	cat.Tools[0].Name = "mutated"

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "JSON Format", got.Tools[0].Name)

	got.Tools[0].Name = "mutated again"
	again, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "JSON Format", again.Tools[0].Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDump(t *testing.T) {
	reg, err := New(context.Background(), StaticSource(testCatalog(), "builtin"), Options{})
	require.NoError(t, err)

	d := reg.Dump()
	require.Equal(t, "builtin", d.Source)
	require.Equal(t, uint64(1), d.Version)
	require.Equal(t, DumpCounts{
		Categories:        2,
		EnabledCategories: 1,
		Tools:             4,
		EnabledTools:      3,
		VisibleTools:      2,
	}, d.Counts)

	require.Equal(t, []CategoryDump{
		{ID: "quick-tools", Name: "Quick Tools", Enabled: true, Order: 1, Tools: 3, VisibleTools: 2},
		{ID: "security", Name: "Security", Enabled: false, Order: 2, Tools: 1, VisibleTools: 0},
	}, d.Categories)

	require.Len(t, d.Tools, 4)
	vault := d.Tools[3]
	require.Equal(t, "vault", vault.ID)
	require.True(t, vault.Enabled)
	require.False(t, vault.Visible)
	require.Equal(t, "/tools/security/vault", vault.URL)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fileCatalog("JSON Format")), 0o600))

	src := NewFileSource(path, loader.NewLoader(zap.NewNop()))
	require.Equal(t, "file:"+path, src.String())

	reg, err := New(context.Background(), src, Options{})
	require.NoError(t, err)
	tool, ok := reg.Index().Resolve("quick-tools", "json-format")
	require.True(t, ok)
	require.Equal(t, "JSON Format", tool.Name)
}

func TestWatch_NotWatchable(t *testing.T) {
	reg, err := New(context.Background(), StaticSource(testCatalog(), ""), Options{})
	require.NoError(t, err)
	require.ErrorIs(t, reg.Watch(context.Background()), ErrNotWatchable)
}

func fileCatalog(toolName string) string {
	return `categories:
  - id: quick-tools
    name: Quick Tools
    order: 1
tools:
  - slug: json-format
    category: quick-tools
    name: ` + toolName + `
    description: Pretty print JSON
`
}
