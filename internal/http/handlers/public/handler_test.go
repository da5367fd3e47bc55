package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/provider"
	"github.com/qamees-next/internal/repository"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type publicTestEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	product *models.Product
}

func newPublicTestEnv(t *testing.T) *publicTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductVariant{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	product := &models.Product{
		Title:    "Linen Shirt",
		Price:    models.NewMoneyFromDecimal(decimal.RequireFromString("125.14")),
		Category: constants.ProductCategorySummer,
		IsActive: true,
	}
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	container := &provider.Container{
		OrderRepo:       orderRepo,
		ProductRepo:     productRepo,
		CartRegistry:    cart.NewRegistry(cart.NewMemoryStorage()),
		CartService:     service.NewCartService(productRepo),
		CheckoutService: service.NewCheckoutService(orderRepo, nil, nil, nil),
	}
	h := New(container)

	r := gin.New()
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddCartItem)
	r.PATCH("/cart/items/:variant_id", h.UpdateCartItem)
	r.DELETE("/cart/items/:variant_id", h.RemoveCartItem)
	r.DELETE("/cart", h.ClearCart)
	r.GET("/checkout/preview", h.PreviewCheckout)
	r.POST("/checkout", h.Checkout)
	return &publicTestEnv{router: r, db: db, product: product}
}

type cartEnvelope struct {
	StatusCode int    `json:"status_code"`
	Msg        string `json:"msg"`
	Data       struct {
		SessionID  string      `json:"session_id"`
		Items      []cart.Item `json:"items"`
		TotalItems int         `json:"total_items"`
		TotalPrice string      `json:"total_price"`
	} `json:"data"`
}

func (e *publicTestEnv) do(t *testing.T, method, path, session string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en")
	if session != "" {
		req.Header.Set(constants.CartSessionHeader, session)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var env cartEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
	}
	return env
}

func TestCartFlowAndCheckout(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodGet, "/cart", "", nil)
	session := w.Header().Get(constants.CartSessionHeader)
	if session == "" {
		t.Fatalf("expected cart session header to be issued")
	}

	w = env.do(t, http.MethodPost, "/cart/items", session, gin.H{"product_id": env.product.ID, "quantity": 1})
	w = env.do(t, http.MethodPost, "/cart/items", session, gin.H{"product_id": env.product.ID, "quantity": 1})
	got := decodeCart(t, w)
	if got.StatusCode != response.CodeOK || len(got.Data.Items) != 1 || got.Data.TotalItems != 2 {
		t.Fatalf("expected merged line with quantity 2, got %+v", got)
	}
	if got.Data.TotalPrice != "250.28" {
		t.Fatalf("unexpected total: %s", got.Data.TotalPrice)
	}

	w = env.do(t, http.MethodPatch, "/cart/items/"+env.product.ID, session, gin.H{"quantity": 3})
	if got := decodeCart(t, w); got.Data.TotalItems != 3 {
		t.Fatalf("expected quantity 3, got %d", got.Data.TotalItems)
	}

	w = env.do(t, http.MethodPost, "/checkout", session, gin.H{
		"customer_name":    "Sara Ahmed",
		"customer_email":   "sara@example.com",
		"customer_phone":   "+966 50 123 4567",
		"shipping_address": "King Fahd Road",
		"shipping_city":    "Riyadh",
	})
	var placed response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &placed); err != nil || placed.StatusCode != response.CodeOK {
		t.Fatalf("checkout failed: %s", w.Body.String())
	}
	if !strings.HasPrefix(placed.Msg, "Order #") {
		t.Fatalf("unexpected checkout message: %s", placed.Msg)
	}

	var order models.Order
	if err := env.db.Preload("Items").First(&order).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.TotalAmount.String() != "375.42" || len(order.Items) != 1 || order.ShippingCountry != constants.DefaultShippingCountry {
		t.Fatalf("unexpected order: %+v", order)
	}

	w = env.do(t, http.MethodGet, "/cart", session, nil)
	if got := decodeCart(t, w); len(got.Data.Items) != 0 {
		t.Fatalf("expected empty cart after checkout")
	}
}

func TestCheckoutValidationKeepsCart(t *testing.T) {
	env := newPublicTestEnv(t)
	session := "6f1b1c2a-2c1b-4a55-9a57-3d4c2a7f0e11"

	env.do(t, http.MethodPost, "/cart/items", session, gin.H{"product_id": env.product.ID, "quantity": 2})

	w := env.do(t, http.MethodPost, "/checkout", session, gin.H{
		"customer_name":    "Sara",
		"customer_email":   "not-an-email",
		"customer_phone":   "+966501234567",
		"shipping_address": "Somewhere",
		"shipping_city":    "Jeddah",
	})
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.StatusCode != response.CodeBadRequest || resp.Msg != "Please enter a valid email address" {
		t.Fatalf("unexpected validation response: %+v", resp)
	}

	w = env.do(t, http.MethodGet, "/cart", session, nil)
	if got := decodeCart(t, w); got.Data.TotalItems != 2 {
		t.Fatalf("cart must be untouched after failed checkout, got %d", got.Data.TotalItems)
	}

	w = env.do(t, http.MethodDelete, "/cart", session, nil)
	if got := decodeCart(t, w); got.Data.TotalItems != 0 {
		t.Fatalf("expected cleared cart")
	}
	w = env.do(t, http.MethodPost, "/checkout", session, gin.H{"customer_name": "Sara"})
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Msg != "Your cart is empty" {
		t.Fatalf("expected empty cart error, got %s", resp.Msg)
	}
}

func TestAddCartItemErrors(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodPost, "/cart/items", "", gin.H{"product_id": "missing", "quantity": 1})
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.StatusCode != response.CodeBadRequest || resp.Msg != "Product is not available" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	w = env.do(t, http.MethodPost, "/cart/items", "", gin.H{"product_id": env.product.ID, "quantity": -2})
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Msg != "Invalid cart item" {
		t.Fatalf("expected invalid item, got %s", resp.Msg)
	}

	session := "0b7f3f7e-7a52-4c43-9d1e-5e0f6f1a2b3c"
	w = env.do(t, http.MethodPost, "/cart/items", session, gin.H{"product_id": env.product.ID, "quantity": 9223372036854775807})
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Msg != "Invalid cart item" {
		t.Fatalf("expected oversized quantity to be rejected, got %s", resp.Msg)
	}
	env.do(t, http.MethodPost, "/cart/items", session, gin.H{"product_id": env.product.ID, "quantity": 1})
	w = env.do(t, http.MethodPatch, "/cart/items/"+env.product.ID, session, gin.H{"quantity": 1000})
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Msg != "Invalid cart item" {
		t.Fatalf("expected oversized update to be rejected, got %s", resp.Msg)
	}
	w = env.do(t, http.MethodGet, "/cart", session, nil)
	if got := decodeCart(t, w); got.Data.TotalItems != 1 {
		t.Fatalf("rejected requests must not touch the cart, got %d", got.Data.TotalItems)
	}

	w = env.do(t, http.MethodGet, "/checkout/preview", "", nil)
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Msg != "Your cart is empty" {
		t.Fatalf("expected empty preview error, got %s", resp.Msg)
	}
}
