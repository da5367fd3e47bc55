package public

import (
	"strings"

	"github.com/qamees-next/internal/cart"
	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 加入购物车请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest 修改数量请求
type CartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse 购物车响应
type CartResponse struct {
	SessionID string `json:"session_id"`
	cart.Snapshot
}

func (h *Handler) cartStore(c *gin.Context) (string, *cart.Store) {
	sessionID, _ := handlershared.ResolveCartSession(c)
	return sessionID, h.CartRegistry.Get(c.Request.Context(), sessionID)
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, store := h.cartStore(c)
	response.Success(c, CartResponse{SessionID: sessionID, Snapshot: store.Snapshot()})
}

// AddCartItem 加入购物车（同规格累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	item, err := h.CartService.BuildItem(service.AddCartItemInput{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCartItemError(c, err)
		return
	}

	sessionID, store := h.cartStore(c)
	store.AddItem(c.Request.Context(), item)
	response.Success(c, CartResponse{SessionID: sessionID, Snapshot: store.Snapshot()})
}

// UpdateCartItem 修改购物车项数量，数量 <= 0 时移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	variantID := strings.TrimSpace(c.Param("variant_id"))
	if variantID == "" {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if *req.Quantity > cart.MaxQuantity {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	sessionID, store := h.cartStore(c)
	store.UpdateQuantity(c.Request.Context(), variantID, *req.Quantity)
	response.Success(c, CartResponse{SessionID: sessionID, Snapshot: store.Snapshot()})
}

// RemoveCartItem 移除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	variantID := strings.TrimSpace(c.Param("variant_id"))
	sessionID, store := h.cartStore(c)
	store.RemoveItem(c.Request.Context(), variantID)
	response.Success(c, CartResponse{SessionID: sessionID, Snapshot: store.Snapshot()})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, store := h.cartStore(c)
	store.ClearCart(c.Request.Context())
	response.Success(c, CartResponse{SessionID: sessionID, Snapshot: store.Snapshot()})
}
