package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/garden/internal/logger"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, remote string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	r.RemoteAddr = remote
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRateLimitBurst(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 2, PerMinute: 1})(ok)

	for i := 0; i < 2; i++ {
		if w := serve(h, "1.2.3.4:1000"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}

	w := serve(h, "1.2.3.4:1000")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}

	// Other clients have their own bucket.
	if w := serve(h, "5.6.7.8:1000"); w.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	h := RateLimit(RateLimitConfig{})(ok)
	for i := 0; i < 10; i++ {
		if w := serve(h, "1.2.3.4:1000"); w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	}
}

func TestLimiterSweepsIdleVisitors(t *testing.T) {
	now := time.Now()
	l := newLimiter(RateLimitConfig{Burst: 1, PerMinute: 60, SweepInterval: time.Second, IdleTTL: time.Second}, now)

	l.allow("a", now)
	l.allow("b", now.Add(3*time.Second))
	if _, found := l.visitors["a"]; found {
		t.Error("idle visitor should have been swept")
	}
	if len(l.visitors) != 1 {
		t.Errorf("visitors = %d, want 1", len(l.visitors))
	}
}

func TestAllowOnlyCIDRS(t *testing.T) {
	log := logger.New("error", false)

	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, false, log)(ok)
	if w := serve(h, "10.1.1.1:80"); w.Code != http.StatusOK {
		t.Errorf("allowed status = %d, want 200", w.Code)
	}
	if w := serve(h, "8.8.8.8:80"); w.Code != http.StatusForbidden {
		t.Errorf("denied status = %d, want 403", w.Code)
	}

	open := AllowOnlyCIDRS(nil, false, log)(ok)
	if w := serve(open, "8.8.8.8:80"); w.Code != http.StatusOK {
		t.Errorf("passthrough status = %d, want 200", w.Code)
	}
}
