//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.ProductVariant{},
		&models.Product{},
		&models.PromotionalBanner{},
		&models.CustomDesign{},
		&models.CartSnapshot{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductVariant{},
		&models.PromotionalBanner{},
		&models.CustomDesign{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartSnapshot{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresSearchRepositories(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	productRepo := NewProductRepository(db)
	product := &models.Product{
		Title:    "Linen Thobe",
		Price:    money("149.00"),
		Category: constants.ProductCategorySummer,
		IsActive: true,
	}
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := productRepo.ReplaceVariants(product.ID, []models.ProductVariant{
		{Size: "M", Color: "White", SKU: "LT-WHITE-M", StockQuantity: 3},
	}); err != nil {
		t.Fatalf("replace variants failed: %v", err)
	}

	products, total, err := productRepo.List(ProductListFilter{
		Page:         1,
		PageSize:     20,
		Search:       "linen",
		WithVariants: true,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected one product, got total=%d len=%d", total, len(products))
	}
	if len(products[0].Variants) != 1 {
		t.Fatalf("expected preloaded variant, got %d", len(products[0].Variants))
	}

	bannerRepo := NewBannerRepository(db)
	if err := bannerRepo.Create(&models.PromotionalBanner{
		Title:    "Winter Collection",
		ImageURL: "/uploads/banner/winter.jpg",
		IsActive: true,
	}); err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	banners, total, err := bannerRepo.List(BannerListFilter{Page: 1, PageSize: 20, Search: "winter"})
	if err != nil {
		t.Fatalf("list banners failed: %v", err)
	}
	if total != 1 || len(banners) != 1 {
		t.Fatalf("expected one banner, got total=%d len=%d", total, len(banners))
	}
}

func TestPostgresDashboardAggregates(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	orders := NewOrderRepository(db)
	dashboard := NewDashboardRepository(db)

	placed := newTestOrder("pg@example.com")
	placed.TotalAmount = money("40.00")
	if err := orders.Create(placed, []models.OrderItem{
		{ProductID: "p1", ProductTitle: "Thobe", Quantity: 2, UnitPrice: money("20.00"), TotalPrice: money("40.00")},
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	overview, err := dashboard.GetOverview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalOrders != 1 || overview.PendingOrders != 1 || overview.TotalRevenue != 40 {
		t.Fatalf("unexpected overview: %+v", overview)
	}

	now := time.Now()
	trends, err := dashboard.GetOrderTrends(now.Add(-24*time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("trends failed: %v", err)
	}
	if len(trends) != 1 || trends[0].OrdersTotal != 1 {
		t.Fatalf("unexpected trends: %+v", trends)
	}

	ranking, err := dashboard.GetTopProducts(now.Add(-time.Hour), now.Add(time.Hour), 5)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if len(ranking) != 1 || ranking[0].Quantity != 2 {
		t.Fatalf("unexpected ranking: %+v", ranking)
	}
}

func TestPostgresCartStoragePruneIdle(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	storage := NewCartStorage(db)
	ctx := context.Background()

	if err := storage.Set(ctx, "cart-storage:pg", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	removed, err := storage.PruneIdle(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one pruned snapshot, got %d", removed)
	}
	if _, ok, err := storage.Get(ctx, "cart-storage:pg"); err != nil || ok {
		t.Fatalf("expected snapshot to be gone, ok=%v err=%v", ok, err)
	}
}
