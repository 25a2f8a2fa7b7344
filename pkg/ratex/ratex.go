// Package ratex provides a keyed token-bucket limiter for throttling
// repeated attempts against a single resource, such as login attempts per
// email address.
package ratex

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config defines the limiting parameters.
type Config struct {
	// AttemptsPerWindow is the number of attempts allowed in the time window
	AttemptsPerWindow int
	// Window is the time window for limiting
	Window time.Duration
	// Burst allows for temporary bursts above the steady rate
	Burst int
}

// StrictLimit suits authentication attempts (brute force prevention):
// 5 attempts per minute, all 5 available as a burst.
var StrictLimit = Config{
	AttemptsPerWindow: 5,
	Window:            time.Minute,
	Burst:             5,
}

// Limiter manages independent token buckets per key.
type Limiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

// NewLimiter creates a keyed limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	perSecond := float64(cfg.AttemptsPerWindow) / cfg.Window.Seconds()

	return &Limiter{
		rate:        rate.Limit(perSecond),
		burst:       cfg.Burst,
		lastCleanup: time.Now(),
	}
}

// Allow reports whether an attempt for key may proceed now. An empty key is
// always allowed; callers without a meaningful key should not be throttled
// collectively.
func (l *Limiter) Allow(key string) bool {
	if key == "" {
		return true
	}
	return l.getLimiter(key).Allow()
}

// getLimiter retrieves or creates the bucket for the given key.
func (l *Limiter) getLimiter(key string) *rate.Limiter {
	// Fast path: limiter already exists
	if limiter, ok := l.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	// Slow path: create new limiter
	limiter := rate.NewLimiter(l.rate, l.burst)
	actual, _ := l.limiters.LoadOrStore(key, limiter)

	// Periodic cleanup to prevent memory leak
	l.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup removes limiters that haven't been used recently so
// ephemeral keys don't accumulate forever.
func (l *Limiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Only cleanup once every 5 minutes
	if time.Since(l.lastCleanup) < 5*time.Minute {
		return
	}

	l.lastCleanup = time.Now()

	// A limiter with a full token bucket hasn't been touched in at least
	// one window; treat it as idle and drop it.
	l.limiters.Range(func(key, value any) bool {
		limiter := value.(*rate.Limiter)
		if limiter.Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}
