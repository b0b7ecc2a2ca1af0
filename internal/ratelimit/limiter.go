package ratelimit

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per host so that no single third-party site
// sees more than the configured request rate, however many articles point at it.
type Limiter struct {
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

// New returns a limiter allowing perSecond requests per host with a burst of
// one. A non-positive rate means unlimited.
func New(perSecond float64) *Limiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    1,
	}
}

// Unlimited returns a limiter that never blocks. Tests use it to avoid
// slowing down.
func Unlimited() *Limiter {
	return New(0)
}

// forHost returns the bucket for host, creating it on first use
func (l *Limiter) forHost(host string) *rate.Limiter {
	key := strings.ToLower(host)

	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

// Wait blocks until the limiter permits a request to host.
// It returns an error if the context is canceled before the request can proceed.
func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.forHost(host).Wait(ctx)
}

// Allow reports whether a request to host may happen now
func (l *Limiter) Allow(host string) bool {
	return l.forHost(host).Allow()
}

// Hosts returns the number of hosts seen so far
func (l *Limiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
