package llmproxy

import (
	"sync"
	"time"
)

// Default limiter settings.
const (
	DefaultRateLimit  = 10
	DefaultRateWindow = time.Hour
)

type window struct {
	count int
	reset time.Time
}

// Limiter allows at most limit requests per key in each fixed window. The
// window for a key starts at its first request.
type Limiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

// NewLimiter creates a Limiter. Non-positive arguments select the defaults.
func NewLimiter(limit int, period time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if period <= 0 {
		period = DefaultRateWindow
	}
	return &Limiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Allow records a request for key. When the key is over its limit, Allow
// returns false and the time until its window resets.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || !now.Before(w.reset) {
		l.windows[key] = &window{count: 1, reset: now.Add(l.period)}
		return true, 0
	}
	if w.count >= l.limit {
		return false, w.reset.Sub(now)
	}
	w.count++
	return true, 0
}

// sweep drops expired windows at most once per period.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.period {
		return
	}
	l.lastSweep = now
	for key, w := range l.windows {
		if !now.Before(w.reset) {
			delete(l.windows, key)
		}
	}
}
