package registry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jonwraymond/toolcatalog/index"
)

const defaultReloadDebounce = 200 * time.Millisecond

// Change sources reported in ChangeEvent.Source.
const (
	ChangeStartup = "startup"
	ChangeManual  = "manual"
	ChangeWatch   = "watch"
)

// Observer receives reload outcomes. telemetry.Metrics satisfies it.
type Observer interface {
	ObserveReload(source string, err error)
	SetToolCounts(total, visible int)
}

// Options configures a Registry. The zero value is usable.
type Options struct {
	Logger     *zap.Logger
	Searcher   index.Searcher
	LinkPolicy index.LinkPolicy
	Observer   Observer

	// Debounce delays watch-triggered reloads. Defaults to 200ms.
	Debounce time.Duration
}

// ChangeEvent describes a successful index swap.
type ChangeEvent struct {
	Version      uint64    `json:"version"`
	Fingerprint  string    `json:"fingerprint"`
	Tools        int       `json:"tools"`
	VisibleTools int       `json:"visibleTools"`
	Source       string    `json:"source"`
	At           time.Time `json:"at"`
}

// Stats reports the live index and reload history.
type Stats struct {
	Index          index.Stats `json:"index"`
	Source         string      `json:"source"`
	Reloads        uint64      `json:"reloads"`
	ReloadFailures uint64      `json:"reloadFailures"`
	LastReload     time.Time   `json:"lastReload,omitzero"`
	LastError      string      `json:"lastError,omitempty"`
}

// Registry owns the live index. Readers load it without locking; reloads
// build a complete replacement and swap it in atomically.
type Registry struct {
	logger *zap.Logger
	src    Source
	opts   Options

	current atomic.Pointer[index.Index]

	reloadMu   sync.Mutex
	reloads    atomic.Uint64
	failures   atomic.Uint64
	lastReload atomic.Pointer[time.Time]
	lastErr    atomic.Pointer[string]

	subsMu  sync.Mutex
	subs    map[int]func(ChangeEvent)
	nextSub int
}

// New loads src and builds the first index. Any error is fatal to the caller:
// a registry never starts with an inconsistent catalog.
func New(ctx context.Context, src Source, opts Options) (*Registry, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultReloadDebounce
	}

	r := &Registry{
		logger: logger.Named("registry"),
		src:    src,
		opts:   opts,
		subs:   make(map[int]func(ChangeEvent)),
	}

	idx, err := r.build(ctx, 1)
	if err != nil {
		r.observe(ChangeStartup, err)
		return nil, err
	}
	r.current.Store(idx)
	r.observe(ChangeStartup, nil)
	r.reportCounts(idx)

	st := idx.Stats()
	r.logger.Info("catalog indexed",
		zap.String("source", src.String()),
		zap.Int("categories", st.Categories),
		zap.Int("tools", st.Tools),
		zap.Int("visible_tools", st.VisibleTools),
		zap.String("link_policy", st.LinkPolicy),
	)
	return r, nil
}

func (r *Registry) build(ctx context.Context, version uint64) (*index.Index, error) {
	cat, err := r.src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", r.src, err)
	}
	return index.Build(cat, index.Options{
		Searcher:   r.opts.Searcher,
		LinkPolicy: r.opts.LinkPolicy,
		Version:    version,
	})
}

// Index returns the live index snapshot. The snapshot stays valid and
// unchanged even if a reload swaps in a newer one.
func (r *Registry) Index() *index.Index {
	return r.current.Load()
}

// Source returns the registry's catalog source.
func (r *Registry) Source() Source { return r.src }

// Reload rebuilds the index from the source. On failure the live index is
// kept and the error returned. A catalog identical to the live one is a
// no-op.
func (r *Registry) Reload(ctx context.Context) error {
	return r.reload(ctx, ChangeManual)
}

func (r *Registry) reload(ctx context.Context, source string) error {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	prev := r.current.Load()
	next, err := r.build(ctx, prev.Version()+1)
	if err != nil {
		r.observe(source, err)
		return err
	}
	r.observe(source, nil)

	if next.Fingerprint() == prev.Fingerprint() {
		r.logger.Debug("catalog unchanged", zap.String("source", source))
		return nil
	}

	r.current.Store(next)
	r.reportCounts(next)

	st := next.Stats()
	r.logger.Info("catalog reloaded",
		zap.String("source", source),
		zap.Uint64("version", st.Version),
		zap.Int("tools", st.Tools),
		zap.Int("visible_tools", st.VisibleTools),
	)
	r.broadcast(ChangeEvent{
		Version:      st.Version,
		Fingerprint:  st.Fingerprint,
		Tools:        st.Tools,
		VisibleTools: st.VisibleTools,
		Source:       source,
		At:           time.Now(),
	})
	return nil
}

func (r *Registry) observe(source string, err error) {
	now := time.Now()
	r.lastReload.Store(&now)
	if err != nil {
		r.failures.Add(1)
		msg := err.Error()
		r.lastErr.Store(&msg)
	} else {
		r.reloads.Add(1)
		r.lastErr.Store(nil)
	}
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveReload(source, err)
	}
}

func (r *Registry) reportCounts(idx *index.Index) {
	if r.opts.Observer == nil {
		return
	}
	st := idx.Stats()
	r.opts.Observer.SetToolCounts(st.Tools, st.VisibleTools)
}

// OnChange registers fn to run after every successful index swap. fn runs
// synchronously on the reloading goroutine and must not block. The returned
// function unregisters it.
func (r *Registry) OnChange(fn func(ChangeEvent)) (unsubscribe func()) {
	r.subsMu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.subsMu.Lock()
			delete(r.subs, id)
			r.subsMu.Unlock()
		})
	}
}

func (r *Registry) broadcast(ev ChangeEvent) {
	r.subsMu.Lock()
	fns := make([]func(ChangeEvent), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.subsMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Stats reports the live index and reload history.
func (r *Registry) Stats() Stats {
	st := Stats{
		Index:          r.Index().Stats(),
		Source:         r.src.String(),
		Reloads:        r.reloads.Load(),
		ReloadFailures: r.failures.Load(),
	}
	if t := r.lastReload.Load(); t != nil {
		st.LastReload = *t
	}
	if msg := r.lastErr.Load(); msg != nil {
		st.LastError = *msg
	}
	return st
}
