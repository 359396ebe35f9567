package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func newDirectIPEcho() *echo.Echo {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()
	return e
}

func newLimitedHandler(t *testing.T, rps, burst int) echo.HandlerFunc {
	limiter := NewRateLimiter(rps, burst)
	t.Cleanup(limiter.Stop)
	return limiter.Middleware()(okHandler)
}

func serveFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-tips", nil)
	req.RemoteAddr = remoteAddr
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenLimits(t *testing.T) {
	e := newDirectIPEcho()
	handler := newLimitedHandler(t, 2, 4)

	for i := 0; i < 4; i++ {
		rec := serveFrom(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Rate limiter uses SendError which sends response and returns nil
	rec := serveFrom(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_DisabledWhenRateIsZero(t *testing.T) {
	e := newDirectIPEcho()
	handler := newLimitedHandler(t, 0, 0)

	for i := 0; i < 50; i++ {
		rec := serveFrom(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := newDirectIPEcho()
	handler := newLimitedHandler(t, 5, 5)

	ips := []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"}

	for _, ip := range ips {
		for i := 0; i < 5; i++ {
			rec := serveFrom(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "Request %d for IP %s should succeed", i, ip)
		}
	}
}

func TestRateLimiter_IgnoresForwardingHeadersFromClient(t *testing.T) {
	e := newDirectIPEcho()
	handler := newLimitedHandler(t, 1, 1)

	limited := 0
	for i := 0; i < 50; i++ {
		rec := serveFrom(e, handler, "203.0.113.9:4000",
			"X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i),
			"X-Real-IP", fmt.Sprintf("10.0.1.%d", i),
		)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.GreaterOrEqual(t, limited, 48, "rotating forwarding headers must not reset the bucket")
}

func TestRateLimiter_StopEndsCleanupLoop(t *testing.T) {
	limiter := NewRateLimiter(5, 10)

	limiter.Stop()
	limiter.Stop()

	select {
	case <-limiter.done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not exit after Stop")
	}
}

func TestRateLimiter_StopWhenDisabled(t *testing.T) {
	limiter := NewRateLimiter(0, 0)

	limiter.Stop()

	assert.Nil(t, limiter.store)
}

func TestVisitorStore_EvictIdle(t *testing.T) {
	store := newVisitorStore(5, 10)
	store.visitors["old_ip"] = &visitor{lastSeen: time.Now().Add(-5 * time.Minute)}
	store.visitors["new_ip"] = &visitor{lastSeen: time.Now()}

	store.evictIdle(visitorIdleTimeout)

	_, oldExists := store.visitors["old_ip"]
	_, newExists := store.visitors["new_ip"]
	assert.False(t, oldExists, "Old visitor should be removed")
	assert.True(t, newExists, "New visitor should still exist")
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := newDirectIPEcho()
	handler := newLimitedHandler(t, 5, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	rateLimitCount := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec := serveFrom(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}

	wg.Wait()

	assert.Greater(t, successCount, 0, "Some requests should succeed")
	assert.Greater(t, rateLimitCount, 0, "Some requests should be rate limited")
	assert.Equal(t, 20, successCount+rateLimitCount, "All requests should be accounted for")
}
