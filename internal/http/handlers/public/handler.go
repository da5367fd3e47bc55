package public

import (
	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/provider"
	"github.com/qamees-next/internal/service"
)

// Handler 店铺前台接口（游客访问，无登录态）
type Handler struct {
	CartRegistry        *cart.Registry
	CaptchaService      *service.CaptchaService
	ProductService      *service.ProductService
	CartService         *service.CartService
	CheckoutService     *service.CheckoutService
	CustomDesignService *service.CustomDesignService
	BannerService       *service.BannerService
	SettingService      *service.SettingService
}

// New 从容器取出前台依赖
func New(c *provider.Container) *Handler {
	return &Handler{
		CartRegistry:        c.CartRegistry,
		CaptchaService:      c.CaptchaService,
		ProductService:      c.ProductService,
		CartService:         c.CartService,
		CheckoutService:     c.CheckoutService,
		CustomDesignService: c.CustomDesignService,
		BannerService:       c.BannerService,
		SettingService:      c.SettingService,
	}
}
