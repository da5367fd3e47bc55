package provider

import (
	"context"
	"strings"
	"time"

	"github.com/qamees-next/internal/authz"
	"github.com/qamees-next/internal/cache"
	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/metrics"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/queue"
	"github.com/qamees-next/internal/repository"
	"github.com/qamees-next/internal/service"
	"github.com/qamees-next/internal/storage"
)

// Container 依赖注入容器
type Container struct {
	Config        *config.Config
	QueueClient   *queue.Client
	Metrics       *metrics.Metrics
	CartStorage   cart.Storage
	CartRegistry  *cart.Registry
	ObjectStorage storage.ObjectStorage

	// Repositories
	AdminRepo        repository.AdminRepository
	ProductRepo      repository.ProductRepository
	OrderRepo        repository.OrderRepository
	CustomDesignRepo repository.CustomDesignRepository
	BannerRepo       repository.BannerRepository
	SettingRepo      repository.SettingRepository
	DashboardRepo    repository.DashboardRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	AdminService        *service.AdminService
	CaptchaService      *service.CaptchaService
	UploadService       *service.UploadService
	ProductService      *service.ProductService
	CartService         *service.CartService
	CheckoutService     *service.CheckoutService
	OrderService        *service.OrderService
	CustomDesignService *service.CustomDesignService
	BannerService       *service.BannerService
	SettingService      *service.SettingService
	DashboardService    *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queue.NewClient(&cfg.Queue),
		Metrics:     metrics.New(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化购物车与文件存储
	c.initCart()
	c.initObjectStorage()

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CustomDesignRepo = repository.NewCustomDesignRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

// initCart 按配置选择购物车持久化后端，不可用时退回内存
func (c *Container) initCart() {
	driver := strings.ToLower(strings.TrimSpace(c.Config.Cart.Storage))
	idleTTL := time.Duration(c.Config.Cart.IdleTTLHours) * time.Hour

	var store cart.Storage
	switch driver {
	case "redis":
		redisStorage, err := cache.NewCartStorage(idleTTL)
		if err != nil {
			logger.Warnw("provider_cart_storage_redis_unavailable", "error", err, "fallback", "memory")
			break
		}
		store = redisStorage
	case "database", "db":
		store = repository.NewCartStorage(models.DB)
	case "", "memory":
	default:
		logger.Warnw("provider_cart_storage_unknown", "driver", driver, "fallback", "memory")
	}
	if store == nil {
		store = cart.NewMemoryStorage()
	}

	c.CartStorage = store
	c.CartRegistry = cart.NewRegistry(store,
		cart.WithRecorder(c.Metrics),
		cart.WithListener(func(snapshot cart.Snapshot) {
			c.Metrics.ObserveCartSize(snapshot.TotalItems)
		}),
	)
	logger.Infow("provider_cart_storage_ready", "driver", driver)
}

func (c *Container) initObjectStorage() {
	objectStorage, err := storage.New(context.Background(), c.Config.Storage)
	if err != nil {
		logger.Errorw("provider_init_object_storage_failed", "driver", c.Config.Storage.Driver, "error", err, "fallback", "local")
		objectStorage = storage.NewLocalStorage(c.Config.Storage.Local.Dir, c.Config.Storage.Local.PublicBaseURL)
	}
	c.ObjectStorage = objectStorage
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.SeedBuiltinRoles(); err != nil {
		logger.Errorw("provider_seed_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo, c.CaptchaService)
	c.AdminService = service.NewAdminService(c.AdminRepo, c.Config.Security.PasswordPolicy)
	c.UploadService = service.NewUploadService(c.Config.Upload, c.ObjectStorage)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.OrderRepo, c.CaptchaService, c.QueueClient, c.Metrics)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
	c.CustomDesignService = service.NewCustomDesignService(c.CustomDesignRepo, c.CaptchaService)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
