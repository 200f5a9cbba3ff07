// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/contact", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	RateLimitMiddleware(limiter, "/contact")(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if w.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("Expected 4 remaining, got %s", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter, "/contact", "/subscribe")

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		c, _ := gin.CreateTestContext(last)
		c.Request = httptest.NewRequest("POST", "/contact", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"
		middleware(c)

		if i < 2 && last.Code == 429 {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if last.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", last.Code)
	}
	if last.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", last.Header().Get("X-RateLimit-Limit"))
	}
	if last.Header().Get("Retry-After") != "60" {
		t.Errorf("Expected Retry-After: 60, got %s", last.Header().Get("Retry-After"))
	}

	// A different client still has its own bucket
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/contact", nil)
	c.Request.RemoteAddr = "10.0.0.2:1234"
	middleware(c)
	if w.Code == 429 {
		t.Error("Other client should not be rate limited")
	}
}

func TestRateLimitIgnoresOtherRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter, "/contact")

	for _, req := range []struct{ method, path string }{
		{"GET", "/contact"},
		{"GET", "/contact"},
		{"POST", "/ui/scroll"},
		{"POST", "/ui/scroll"},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(req.method, req.path, nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"
		middleware(c)

		if w.Code == 429 {
			t.Errorf("%s %s should not be rate limited", req.method, req.path)
		}
	}
}

func TestRateLimitRefill(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)
	defer limiter.Stop()

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := limiter.Allow("10.0.0.1"); ok {
		t.Fatal("second request should be limited")
	}

	time.Sleep(20 * time.Millisecond)

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Error("bucket should refill after the interval")
	}
}

func TestRateLimitPrune(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.prune(time.Now().Add(5 * time.Minute))

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if len(limiter.buckets) != 0 {
		t.Errorf("expected idle bucket to be pruned, %d left", len(limiter.buckets))
	}
}
