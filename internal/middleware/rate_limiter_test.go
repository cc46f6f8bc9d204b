package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func requestFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		return http.StatusInternalServerError
	}
	return rec.Code
}

func TestRateLimiter_AllowsBurstThenLimits(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, handler, "192.168.1.100:12345"))
	}
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, handler, "192.168.1.100:12345"))
}

func TestRateLimiter_ClampsInvalidSettings(t *testing.T) {
	rl := NewRateLimiter(0, -5)

	assert.Equal(t, 1, rl.requestsPerSecond)
	assert.Equal(t, 1, rl.burst)
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, requestFrom(e, handler, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, handler, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, requestFrom(e, handler, "10.0.0.2:1000"))
}

func TestRateLimiter_UsesForwardedFor(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 1))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", nil)
		req.RemoteAddr = "172.16.0.1:443"
		req.Header.Set(echo.HeaderXForwardedFor, forwarded)
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("203.0.113.8"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(5, 10)
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getVisitor("10.0.0.1")
	now = now.Add(2 * time.Minute)
	rl.getVisitor("10.0.0.2")
	now = now.Add(2 * time.Minute)

	rl.cleanup()

	assert.Equal(t, 1, rl.visitorCount())
	_, kept := rl.visitors["10.0.0.2"]
	assert.True(t, kept)
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(5, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		rl.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 10))

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if requestFrom(e, handler, "10.0.0.9:5000") == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 10)
	assert.Less(t, allowed, 50)
}
