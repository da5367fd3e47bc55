package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qamees-next/internal/authz"
	handlershared "github.com/qamees-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	StatusCode int    `json:"status_code"`
	Msg        string `json:"msg"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func TestRequestIDMiddlewareKeepsOrGenerates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) != "req-123" || w.Body.String() != "req-123" {
		t.Fatalf("expected upstream request id, header=%s body=%s", w.Header().Get(requestIDHeader), w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(requestIDHeader)
	if len(generated) != 36 || generated != w.Body.String() {
		t.Fatalf("expected generated uuid, got %q", generated)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		token string
		key   string
	}{
		"":              {key: "error.auth_header_missing"},
		"Basic abc":     {key: "error.auth_header_invalid"},
		"Bearer":        {key: "error.auth_header_invalid"},
		"Bearer  ":      {key: "error.auth_header_invalid"},
		"bearer tok-1":  {token: "tok-1"},
		"Bearer  tok-2": {token: "tok-2"},
	}
	for header, want := range cases {
		token, key := bearerToken(header)
		if token != want.token || key != want.key {
			t.Fatalf("header %q: want (%q,%q) got (%q,%q)", header, want.token, want.key, token, key)
		}
	}
}

func TestJWTAuthMiddlewareMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware("", nil))
	r.GET("/api/v1/admin/me", func(c *gin.Context) {
		t.Fatalf("handler should not run")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestAdminRBACMiddlewareRequiresPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminRBACMiddleware(&authz.Service{}))
	r.GET("/api/v1/admin/orders", func(c *gin.Context) {
		t.Fatalf("handler should not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))
	if resp := decodeEnvelope(t, w); resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestAdminRBACMiddlewareWithoutService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		handlershared.SetAdminPrincipal(c, handlershared.AdminPrincipal{AdminID: "admin-1", Role: "admin"})
	}, AdminRBACMiddleware(nil))
	r.GET("/api/v1/admin/orders", func(c *gin.Context) {
		t.Fatalf("handler should not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))
	if resp := decodeEnvelope(t, w); resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestPermissionCatalogSkipsLoginAndDeduplicates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	noop := func(*gin.Context) {}
	r.POST("/api/v1/admin/login", noop)
	r.GET("/api/v1/admin/products", noop)
	r.GET("/api/v1/admin/products/:id", noop)
	r.PUT("/api/v1/admin/products/:id", noop)
	r.GET("/api/v1/admin/orders", noop)
	r.GET("/api/v1/products", noop)

	entries := permissionCatalog(r.Routes())
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %+v", entries)
	}
	if entries[0].Module != "orders" || entries[0].Permission != "GET:/admin/orders" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	last := entries[len(entries)-1]
	if last.Module != "products" || last.Method != "PUT" || last.Object != "/admin/products/:id" {
		t.Fatalf("unexpected last entry: %+v", last)
	}
}
