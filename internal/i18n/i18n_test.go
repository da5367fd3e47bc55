package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMessageTablesHaveSameKeys(t *testing.T) {
	for key := range enMessages {
		if _, ok := arMessages[key]; !ok {
			t.Fatalf("arabic table missing key %s", key)
		}
	}
	for key := range arMessages {
		if _, ok := enMessages[key]; !ok {
			t.Fatalf("english table missing key %s", key)
		}
	}
}

func TestTFallback(t *testing.T) {
	if got := T("en", "error.cart_empty"); got != "Your cart is empty" {
		t.Fatalf("unexpected english message: %s", got)
	}
	if got := T("fr", "error.cart_empty"); got != arMessages["error.cart_empty"] {
		t.Fatalf("unknown locale must fall back to arabic, got %s", got)
	}
	if got := T("en", "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("missing key must return itself, got %s", got)
	}
	if got := Sprintf("en-US", "message.order_placed", "abc"); got != "Order #abc placed successfully" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/products?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "ar")
	if got := ResolveLocale(c); got != "en" {
		t.Fatalf("query lang must win, got %s", got)
	}

	c.Request = httptest.NewRequest("GET", "/api/v1/products", nil)
	c.Request.Header.Set("Accept-Language", "fr-FR,en-GB;q=0.8")
	if got := ResolveLocale(c); got != "en" {
		t.Fatalf("expected en from header, got %s", got)
	}

	c.Request = httptest.NewRequest("GET", "/api/v1/products", nil)
	if got := ResolveLocale(c); got != DefaultLocale {
		t.Fatalf("expected default locale, got %s", got)
	}
}
