package middleware

import (
	"sync"
	"time"

	"finwise-tips/internal/errors"
	"finwise-tips/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	cleanupInterval    = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore holds one token bucket per client IP
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newVisitorStore(rps, burst int) *visitorStore {
	return &visitorStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// RateLimiter limits requests per client IP as resolved by echo's IPExtractor.
// Callers own its lifecycle and must call Stop to end the idle visitor sweep.
type RateLimiter struct {
	store    *visitorStore
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst.
// A non-positive rps disables limiting and starts no background work.
func NewRateLimiter(rps, burst int) *RateLimiter {
	l := &RateLimiter{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	if rps <= 0 {
		close(l.done)
		return l
	}
	if burst < 1 {
		burst = 1
	}

	l.store = newVisitorStore(rps, burst)
	go l.cleanupLoop()

	return l
}

// Middleware returns the echo middleware enforcing the limit
func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if l.store == nil {
			return next
		}

		return func(c echo.Context) error {
			if !l.store.get(c.RealIP()).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// Stop ends the idle visitor sweep and waits for it to exit. It is safe to call more than once.
func (l *RateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done
}

func (l *RateLimiter) cleanupLoop() {
	defer close(l.done)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.store.evictIdle(visitorIdleTimeout)
		}
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(s.limit, s.burst)
		s.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// evictIdle drops visitors not seen for longer than idle
func (s *visitorStore) evictIdle(idle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, v := range s.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(s.visitors, ip)
		}
	}
}
