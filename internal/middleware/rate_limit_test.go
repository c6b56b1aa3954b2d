package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	subject := "auth0|user1"

	// First 5 requests should be allowed (burst)
	for i := 0; i < 5; i++ {
		if !rl.Allow(subject) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 6th request should be rate limited (exceeded burst)
	if rl.Allow(subject) {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentSubjects(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	// Exhaust the first subject's burst
	for i := 0; i < 3; i++ {
		if !rl.Allow("auth0|user1") {
			t.Errorf("Subject 1 request %d should be allowed", i+1)
		}
	}

	if rl.Allow("auth0|user1") {
		t.Error("Subject 1 should be rate limited")
	}

	// Another subject should still have its full burst
	for i := 0; i < 3; i++ {
		if !rl.Allow("auth0|user2") {
			t.Errorf("Subject 2 request %d should be allowed", i+1)
		}
	}
}

func TestRateLimitMiddleware_SkipsUnauthenticated(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(1, 1)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	// No subject in context, so no rate limiting
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimitMiddleware_RateLimitsSubject(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2) // Small burst for testing
	defer rl.Stop()

	subject := "auth0|user1"

	newContext := func(rec *httptest.ResponseRecorder) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
		ctx := context.WithValue(req.Context(), SubjectKey, subject)
		return e.NewContext(req.WithContext(ctx), rec)
	}

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	// First 2 requests should succeed (burst)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		c := newContext(rec)

		if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
			t.Fatalf("Request %d: expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: expected status 200, got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") == "" {
			t.Errorf("Request %d: expected X-RateLimit-Limit header", i+1)
		}
	}

	// 3rd request should be rate limited
	rec := httptest.NewRecorder()
	c := newContext(rec)

	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on 429")
	}
}
