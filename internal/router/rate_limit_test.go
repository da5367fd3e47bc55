package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestKeyByIPAndJSONFieldRestoresBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"username":" Admin "}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "1.2.3.4:5678"

	if key := KeyByIPAndJSONField("username")(c); key != "admin|1.2.3.4" {
		t.Fatalf("key want admin|1.2.3.4 got %s", key)
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !strings.Contains(string(body), " Admin ") {
		t.Fatalf("request body should be restored, got %q err=%v", body, err)
	}

	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"username":42}`))
	c.Request.RemoteAddr = "1.2.3.4:5678"
	if key := KeyByIPAndJSONField("username")(c); key != "1.2.3.4" {
		t.Fatalf("non-string field should fall back to ip, got %s", key)
	}
}

func TestRateLimitRuleRetryAfter(t *testing.T) {
	rule := RateLimitRule{WindowSeconds: 60, BlockSeconds: 900}
	if got := rule.retryAfter(120); got != 120 {
		t.Fatalf("ttl should win, got %d", got)
	}
	if got := rule.retryAfter(-1); got != 900 {
		t.Fatalf("block seconds should be used when ttl missing, got %d", got)
	}
	rule.BlockSeconds = 0
	if got := rule.retryAfter(0); got != 60 {
		t.Fatalf("window should be used last, got %d", got)
	}
	if got := (RateLimitRule{}).retryAfter(0); got != 1 {
		t.Fatalf("expected minimum of 1, got %d", got)
	}
}

func TestRateLimitMiddlewareWithoutRedisPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(NewLimiter(nil), RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, nil))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Body.String() != "pong" {
			t.Fatalf("request %d should pass, got %s", i, w.Body.String())
		}
	}
}

func TestRateLimitMiddlewareRedisFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	limiter := NewLimiter(client)
	rule := RateLimitRule{Prefix: "test", WindowSeconds: 60, MaxRequests: 5}

	closed := gin.New()
	closed.Use(RateLimitMiddleware(limiter, rule, KeyByIP))
	closed.GET("/ping", func(c *gin.Context) {
		t.Fatalf("fail-closed rule should block")
	})
	w := httptest.NewRecorder()
	closed.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if resp := decodeEnvelope(t, w); resp.StatusCode != 500 {
		t.Fatalf("status_code want 500 got %d", resp.StatusCode)
	}

	rule.FailOpen = true
	open := gin.New()
	open.Use(RateLimitMiddleware(limiter, rule, KeyByIP))
	open.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	w = httptest.NewRecorder()
	open.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Body.String() != "pong" {
		t.Fatalf("fail-open rule should pass, got %s", w.Body.String())
	}
}
