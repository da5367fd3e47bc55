package public

import (
	"strings"

	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/i18n"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结账请求（货到付款）
type CheckoutRequest struct {
	CustomerName    string                       `json:"customer_name"`
	CustomerEmail   string                       `json:"customer_email"`
	CustomerPhone   string                       `json:"customer_phone"`
	ShippingAddress string                       `json:"shipping_address"`
	ShippingCity    string                       `json:"shipping_city"`
	ShippingCountry string                       `json:"shipping_country"`
	Notes           string                       `json:"notes"`
	CaptchaPayload  service.CaptchaVerifyPayload `json:"captcha_payload"`
}

// PreviewCheckout 结账预览
func (h *Handler) PreviewCheckout(c *gin.Context) {
	_, store := h.cartStore(c)
	if store.IsEmpty() {
		respondError(c, response.CodeBadRequest, "error.cart_empty", nil)
		return
	}
	response.Success(c, h.CheckoutService.Preview(store))
}

// Checkout 提交订单，成功后清空购物车
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	locale := i18n.ResolveLocale(c)
	_, store := h.cartStore(c)
	order, err := h.CheckoutService.Checkout(c.Request.Context(), store, service.CheckoutForm{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingCountry: req.ShippingCountry,
		Notes:           req.Notes,
		Captcha:         req.CaptchaPayload,
	}, locale)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.SuccessWithMsg(c, i18n.Sprintf(locale, "message.order_placed", shortOrderNo(order.ID)), order)
}

func shortOrderNo(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
