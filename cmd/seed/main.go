package main

import (
	"strings"
	"time"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	product  models.Product
	variants []models.ProductVariant
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	log := logger.S()

	db, err := models.Open(cfg.Database)
	if err != nil {
		log.Fatalw("seed_open_database_failed", "error", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalw("seed_migrate_failed", "error", err)
	}

	seeds := []seedProduct{
		{
			product: models.Product{
				Title:         "Classic Linen Shirt",
				Description:   "Breathable linen shirt for hot summer days",
				Price:         models.NewMoneyFromDecimal(decimal.RequireFromString("149.00")),
				Category:      constants.ProductCategorySummer,
				ImageURL:      "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800",
				StockQuantity: 40,
				IsActive:      true,
			},
			variants: buildVariants("LINEN", []string{"White", "Sky Blue"}, []string{"S", "M", "L", "XL"}, nil),
		},
		{
			product: models.Product{
				Title:         "Cotton Oxford Shirt",
				Description:   "Everyday oxford weave with a button-down collar",
				Price:         models.NewMoneyFromDecimal(decimal.RequireFromString("125.14")),
				Category:      constants.ProductCategorySummer,
				ImageURL:      "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800",
				StockQuantity: 60,
				IsActive:      true,
			},
			variants: buildVariants("OXFORD", []string{"Navy"}, []string{"M", "L"}, nil),
		},
		{
			product: models.Product{
				Title:         "Flannel Overshirt",
				Description:   "Brushed flannel for cool winter evenings",
				Price:         models.NewMoneyFromDecimal(decimal.RequireFromString("199.00")),
				Category:      constants.ProductCategoryWinter,
				ImageURL:      "https://images.unsplash.com/photo-1589310243389-96a5483213a8?w=800",
				StockQuantity: 25,
				IsActive:      true,
			},
			variants: buildVariants("FLANNEL", []string{"Red Check", "Green Check"}, []string{"M", "L", "XL"}, pricePtr("219.00")),
		},
		{
			product: models.Product{
				Title:         "Tailored Custom Shirt",
				Description:   "Made to measure with your own fabric and embroidery choices",
				Price:         models.NewMoneyFromDecimal(decimal.RequireFromString("299.00")),
				Category:      constants.ProductCategoryCustom,
				ImageURL:      "https://images.unsplash.com/photo-1620012253295-c15cc3e65df4?w=800",
				StockQuantity: 0,
				IsActive:      true,
			},
		},
	}

	for _, seed := range seeds {
		var count int64
		if err := db.Model(&models.Product{}).Where("title = ?", seed.product.Title).Count(&count).Error; err != nil {
			log.Warnw("seed_product_check_failed", "title", seed.product.Title, "error", err)
			continue
		}
		if count > 0 {
			log.Infow("seed_product_exists", "title", seed.product.Title)
			continue
		}
		product := seed.product
		product.Variants = seed.variants
		if err := db.Create(&product).Error; err != nil {
			log.Warnw("seed_product_create_failed", "title", product.Title, "error", err)
			continue
		}
		log.Infow("seed_product_created", "title", product.Title, "variants", len(product.Variants))
	}

	// 首页横幅
	now := time.Now()
	end := now.AddDate(0, 3, 0)
	banners := []models.PromotionalBanner{
		{
			Title:        "Summer Collection",
			Subtitle:     "Light linen and cotton shirts",
			ImageURL:     "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=1600",
			LinkURL:      "/products?category=summer",
			ButtonText:   "Shop now",
			DisplayOrder: 1,
			IsActive:     true,
			StartDate:    &now,
			EndDate:      &end,
		},
		{
			Title:        "Design Your Own",
			Subtitle:     "Send us your idea and we will tailor it",
			ImageURL:     "https://images.unsplash.com/photo-1558769132-cb1aea458c5e?w=1600",
			LinkURL:      "/custom-design",
			ButtonText:   "Start designing",
			DisplayOrder: 2,
			IsActive:     true,
		},
	}
	for _, banner := range banners {
		var count int64
		if err := db.Model(&models.PromotionalBanner{}).Where("title = ?", banner.Title).Count(&count).Error; err != nil || count > 0 {
			continue
		}
		if err := db.Create(&banner).Error; err != nil {
			log.Warnw("seed_banner_create_failed", "title", banner.Title, "error", err)
			continue
		}
		log.Infow("seed_banner_created", "title", banner.Title)
	}

	log.Infow("seed_completed")
}

func buildVariants(skuPrefix string, colors, sizes []string, price *models.Money) []models.ProductVariant {
	variants := make([]models.ProductVariant, 0, len(colors)*len(sizes))
	for _, color := range colors {
		for _, size := range sizes {
			variants = append(variants, models.ProductVariant{
				Size:          size,
				Color:         color,
				SKU:           skuPrefix + "-" + strings.ToUpper(strings.ReplaceAll(color, " ", "")) + "-" + size,
				Price:         price,
				StockQuantity: 10,
			})
		}
	}
	return variants
}

func pricePtr(raw string) *models.Money {
	money := models.NewMoneyFromDecimal(decimal.RequireFromString(raw))
	return &money
}
