package admin

import (
	"github.com/qamees-next/internal/provider"
	"github.com/qamees-next/internal/service"
)

// Handler 管理后台接口，只持有后台用到的服务
type Handler struct {
	AuthService         *service.AuthService
	AdminService        *service.AdminService
	ProductService      *service.ProductService
	OrderService        *service.OrderService
	CustomDesignService *service.CustomDesignService
	BannerService       *service.BannerService
	SettingService      *service.SettingService
	DashboardService    *service.DashboardService
	UploadService       *service.UploadService
}

// New 从容器取出后台依赖
func New(c *provider.Container) *Handler {
	return &Handler{
		AuthService:         c.AuthService,
		AdminService:        c.AdminService,
		ProductService:      c.ProductService,
		OrderService:        c.OrderService,
		CustomDesignService: c.CustomDesignService,
		BannerService:       c.BannerService,
		SettingService:      c.SettingService,
		DashboardService:    c.DashboardService,
		UploadService:       c.UploadService,
	}
}
