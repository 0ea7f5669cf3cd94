package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/backoffice/analytics/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window in-memory request limiter. Analytics
// queries scan whole tenants, so the window is tracked per caller to keep
// one tenant from starving the rest.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	limit       int
	interval    time.Duration
	cleanupTick time.Duration
	done        chan struct{}
	stopOnce    sync.Once
}

type window struct {
	remaining int
	startedAt time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per interval
// for each key.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows:     make(map[string]*window),
		limit:       limit,
		interval:    interval,
		cleanupTick: interval * 2,
		done:        make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call more
// than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.done)
	})
}

// cleanup drops windows that have been idle for two intervals.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, w := range rl.windows {
				if now.Sub(w.startedAt) > rl.interval*2 {
					delete(rl.windows, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Allow reports whether a request under the given key fits in the
// current window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.startedAt) >= rl.interval {
		rl.windows[key] = &window{remaining: rl.limit - 1, startedAt: now}
		return true
	}

	if w.remaining > 0 {
		w.remaining--
		return true
	}
	return false
}

// Remaining returns how many requests the key has left in its window.
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || time.Since(w.startedAt) >= rl.interval {
		return rl.limit
	}
	return w.remaining
}

// RateLimit returns a middleware limiting requests per tenant. Requests
// without a tenant header fall back to the client IP, so unauthenticated
// probes share one bucket per address.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		if tenantID := c.GetHeader(TenantHeaderKey); tenantID != "" {
			return "tenant:" + tenantID
		}
		return "ip:" + c.ClientIP()
	})
}

// RateLimitByKey returns a limiting middleware with a custom key extractor.
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)

		if !limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse("too many requests", http.StatusTooManyRequests))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))

		c.Next()
	}
}
