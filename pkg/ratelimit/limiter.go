package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter keeps a token bucket per key (user id or remote address).
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewLimiter creates a per-key limiter allowing rps requests per second with
// the given burst.
func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a request under key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = limiter
		// Bound the map so long-running servers do not accumulate
		// buckets for every address ever seen.
		if len(l.limiters) > 10000 {
			l.limiters = map[string]*rate.Limiter{key: limiter}
		}
	}
	l.mu.Unlock()
	return limiter.Allow()
}
