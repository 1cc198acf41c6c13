package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out one token bucket per client key (usually the remote IP).
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
}

func New(rps float64, burst int) *Limiter {
	return &Limiter{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *Limiter) GetVisitor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(l.rps, l.burst)
		l.visitors[key] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// Allow reports whether the client identified by key may proceed now.
func (l *Limiter) Allow(key string) bool {
	return l.GetVisitor(key).Allow()
}

// StartVisitorCleanupLoop forgets clients idle for longer than idle, checking
// every interval, until ctx is done.
func (l *Limiter) StartVisitorCleanupLoop(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup(idle)
		}
	}
}

func (l *Limiter) cleanup(idle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, v := range l.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(l.visitors, key)
		}
	}
}

func (l *Limiter) CleanupAllVisitors() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.visitors = make(map[string]*clientLimiter)
}
