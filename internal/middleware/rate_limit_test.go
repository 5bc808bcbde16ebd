package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tablebooker/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, cfg)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.1:12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	r := newTestRouter(config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})

	for i := 0; i < 10; i++ {
		if code := doGet(r); code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want %d", i, code, http.StatusOK)
		}
	}
}

func TestRateLimitThrottlesBurst(t *testing.T) {
	// 60/min gives burst 6: the 7th immediate request must be rejected.
	r := newTestRouter(config.RateLimitConfig{Enabled: true, RequestsPerMin: 60})

	for i := 0; i < 6; i++ {
		if code := doGet(r); code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want %d", i, code, http.StatusOK)
		}
	}

	if code := doGet(r); code != http.StatusTooManyRequests {
		t.Fatalf("burst-exceeding request: code = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterIsolatesSources(t *testing.T) {
	rl := newRateLimiter(60)

	for i := 0; i < 6; i++ {
		if err := rl.Allow("a"); err != nil {
			t.Fatalf("source a request %d: %v", i, err)
		}
	}
	if err := rl.Allow("a"); err == nil {
		t.Fatal("source a should be throttled after its burst")
	}
	if err := rl.Allow("b"); err != nil {
		t.Fatalf("source b should have its own bucket: %v", err)
	}
}
