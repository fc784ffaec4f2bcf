package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/middleware"
	"jira-worklog/pkg/log"
)

func newEngine(mw middleware.Middleware) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		seen = log.TraceID(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return r, &seen
}

func TestRequestID(t *testing.T) {
	r, seen := newEngine(middleware.New(log.NewNop(), middleware.Config{}))

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" || id != *seen {
			t.Errorf("header %q, context %q", id, *seen)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)
		if got := w.Header().Get(middleware.HeaderRequestID); got != "abc-123" || *seen != "abc-123" {
			t.Errorf("header %q, context %q", got, *seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 per client.
	r, _ := newEngine(middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60}))

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	if codes[http.StatusOK] < 6 || codes[http.StatusTooManyRequests] < 3 {
		t.Errorf("unexpected status distribution: %v", codes)
	}

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r, _ := newEngine(middleware.New(log.NewNop(), middleware.Config{}))
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got %d", i, w.Code)
		}
	}
}
