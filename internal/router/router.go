package router

import (
	"net/http"
	"strings"

	"github.com/qamees-next/internal/cache"
	"github.com/qamees-next/internal/config"
	adminhandlers "github.com/qamees-next/internal/http/handlers/admin"
	publichandlers "github.com/qamees-next/internal/http/handlers/public"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/provider"
	"github.com/qamees-next/internal/storage"

	"github.com/gin-gonic/gin"
)

const adminLoginPath = "/api/v1/admin/login"

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(logger.Z()),
		MetricsMiddleware(c.Metrics),
		SecurityHeadersMiddleware(),
		CORSMiddleware(cfg.CORS),
	)

	// 本地存储时直接托管上传目录
	if local, ok := c.ObjectStorage.(*storage.LocalStorage); ok && strings.HasPrefix(local.PublicBaseURL(), "/") {
		r.Static(local.PublicBaseURL(), local.Dir())
	}
	if cfg.Metrics.Enabled && c.Metrics != nil {
		r.GET(metricsPath(cfg.Metrics), gin.WrapH(c.Metrics.Handler()))
	}
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limits := newRateLimits(cfg)
	api := r.Group("/api/v1")
	registerStorefrontRoutes(api, publichandlers.New(c), limits)
	registerAdminRoutes(r, api.Group("/admin"), adminhandlers.New(c), cfg, c, limits)
	return r
}

// rateLimits 路由使用的限流器与规则
type rateLimits struct {
	limiter *Limiter
	login   RateLimitRule
	submit  RateLimitRule
}

func newRateLimits(cfg *config.Config) rateLimits {
	prefix := strings.TrimSpace(cfg.Redis.Prefix)
	if prefix == "" {
		prefix = "qm"
	}
	login := NewRateLimitRule(prefix+":rate:admin_login", cfg.Security.LoginRateLimit)
	login.MessageKey = "error.login_too_many"
	submit := NewRateLimitRule(prefix+":rate:submit", cfg.Security.SubmitRateLimit)
	submit.FailOpen = true
	return rateLimits{limiter: NewLimiter(cache.Client()), login: login, submit: submit}
}

func (l rateLimits) submitBy(name string) gin.HandlerFunc {
	rule := l.submit
	rule.Prefix += ":" + name
	return RateLimitMiddleware(l.limiter, rule, KeyByIP)
}

// registerStorefrontRoutes 店铺前台；购物车以 X-Cart-Session 识别会话
func registerStorefrontRoutes(api *gin.RouterGroup, h *publichandlers.Handler, limits rateLimits) {
	api.GET("/config", h.GetConfig)
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/banners", h.GetPublicBanners)
	api.GET("/captcha/image", h.GetImageCaptcha)

	cart := api.Group("/cart")
	cart.GET("", h.GetCart)
	cart.DELETE("", h.ClearCart)
	cart.POST("/items", h.AddCartItem)
	cart.PATCH("/items/:variant_id", h.UpdateCartItem)
	cart.DELETE("/items/:variant_id", h.RemoveCartItem)

	api.GET("/checkout/preview", h.PreviewCheckout)
	api.POST("/checkout", limits.submitBy("checkout"), h.Checkout)
	api.POST("/custom-designs", limits.submitBy("custom_design"), h.SubmitCustomDesign)
}

// registerAdminRoutes 管理后台；登录外的接口都经过 JWT + RBAC
func registerAdminRoutes(engine *gin.Engine, admin *gin.RouterGroup, h *adminhandlers.Handler, cfg *config.Config, c *provider.Container, limits rateLimits) {
	admin.POST("/login", RateLimitMiddleware(limits.limiter, limits.login, KeyByIPAndJSONField("username")), h.AdminLogin)

	authed := admin.Group("", JWTAuthMiddleware(cfg.JWT.SecretKey, c.AuthService), AdminRBACMiddleware(c.AuthzService))

	authed.GET("/me", h.GetAdminMe)
	authed.GET("/admins", h.ListAdmins)
	authed.POST("/admins", h.CreateAdmin)

	authed.GET("/dashboard/overview", h.GetDashboardOverview)
	authed.GET("/dashboard/trends", h.GetDashboardTrends)
	authed.GET("/dashboard/top-products", h.GetDashboardTopProducts)

	products := authed.Group("/products")
	products.GET("", h.GetAdminProducts)
	products.POST("", h.CreateProduct)
	products.GET("/:id", h.GetAdminProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)
	products.PUT("/:id/variants", h.ReplaceProductVariants)

	orders := authed.Group("/orders")
	orders.GET("", h.GetAdminOrders)
	orders.GET("/:id", h.GetAdminOrder)
	orders.PATCH("/:id/status", h.UpdateOrderStatus)

	designs := authed.Group("/custom-designs")
	designs.GET("", h.GetAdminCustomDesigns)
	designs.GET("/:id", h.GetAdminCustomDesign)
	designs.PATCH("/:id", h.UpdateCustomDesign)

	banners := authed.Group("/banners")
	banners.GET("", h.GetAdminBanners)
	banners.POST("", h.CreateBanner)
	banners.GET("/:id", h.GetAdminBanner)
	banners.PUT("/:id", h.UpdateBanner)
	banners.DELETE("/:id", h.DeleteBanner)

	authed.GET("/settings/store", h.GetStoreSettings)
	authed.PUT("/settings/store", h.UpdateStoreSettings)
	authed.POST("/upload", h.UploadFile)

	authed.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
		response.Success(ctx, permissionCatalog(engine.Routes()))
	})
	authed.GET("/authz/roles/:role/policies", rolePolicies(c.AuthzService))
}

func metricsPath(cfg config.MetricsConfig) string {
	if path := strings.TrimSpace(cfg.Path); path != "" {
		return path
	}
	return "/metrics"
}
