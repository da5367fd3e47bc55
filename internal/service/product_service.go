package service

import (
	"context"
	"strings"
	"time"

	"github.com/qamees-next/internal/cache"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	catalogCacheKeyPrefix = "catalog:products:"
	catalogCacheTTL       = 2 * time.Minute
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Title            string
	Description      string
	Price            decimal.Decimal
	Category         string
	ImageURL         string
	AdditionalImages []string
	StockQuantity    int
	IsActive         *bool
}

// ProductVariantInput 商品规格输入
type ProductVariantInput struct {
	Size          string
	Color         string
	SKU           string
	Price         *decimal.Decimal
	StockQuantity int
}

// ListPublic 获取上架商品（新品在前），可按分类过滤，结果短时缓存
func (s *ProductService) ListPublic(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && !constants.Contains(constants.ProductCategories, category) {
		return nil, ErrProductCategory
	}

	return cache.Remember(ctx, catalogCacheKey(category), catalogCacheTTL, func() ([]models.Product, error) {
		products, _, err := s.repo.List(repository.ProductListFilter{
			Category:     category,
			OnlyActive:   true,
			WithVariants: true,
		})
		return products, err
	})
}

// GetPublic 获取上架商品详情（含规格）
func (s *ProductService) GetPublic(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(strings.TrimSpace(id), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListAdmin 获取后台商品列表
func (s *ProductService) ListAdmin(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	return s.repo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Category:     strings.ToLower(strings.TrimSpace(category)),
		Search:       search,
		WithVariants: true,
	})
}

// GetAdminByID 获取后台商品详情
func (s *ProductService) GetAdminByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product, err := buildProductEntity(input, nil)
	if err != nil {
		return nil, err
	}
	isActive := product.IsActive
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	// is_active 列默认 true，零值 false 需要单独回写
	if !isActive {
		product.IsActive = false
		if err := s.repo.Update(product); err != nil {
			return nil, err
		}
	}
	s.invalidateCatalog(ctx)
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(ctx context.Context, id string, input ProductInput) (*models.Product, error) {
	existing, err := s.repo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	product, err := buildProductEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(id, false)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

// ReplaceVariants 整体替换商品规格
func (s *ProductService) ReplaceVariants(ctx context.Context, id string, inputs []ProductVariantInput) (*models.Product, error) {
	existing, err := s.repo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	variants := make([]models.ProductVariant, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		size := strings.TrimSpace(input.Size)
		color := strings.TrimSpace(input.Color)
		if size == "" && color == "" {
			return nil, ErrVariantInvalid
		}
		if input.StockQuantity < 0 {
			return nil, ErrVariantInvalid
		}
		label := strings.ToLower(color + "/" + size)
		if _, ok := seen[label]; ok {
			return nil, ErrVariantInvalid
		}
		seen[label] = struct{}{}

		variant := models.ProductVariant{
			Size:          size,
			Color:         color,
			SKU:           strings.TrimSpace(input.SKU),
			StockQuantity: input.StockQuantity,
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				return nil, ErrProductPriceInvalid
			}
			price := models.NewMoneyFromDecimal(*input.Price)
			variant.Price = &price
		}
		variants = append(variants, variant)
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).ReplaceVariants(existing.ID, variants)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return s.repo.GetByID(existing.ID, false)
}

func (s *ProductService) invalidateCatalog(ctx context.Context) {
	keys := make([]string, 0, len(constants.ProductCategories)+1)
	for _, category := range append([]string{""}, constants.ProductCategories...) {
		keys = append(keys, catalogCacheKey(category))
	}
	if err := cache.Del(ctx, keys...); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "keys", len(keys), "error", err)
	}
}

func catalogCacheKey(category string) string {
	if category == "" {
		return catalogCacheKeyPrefix + "all"
	}
	return catalogCacheKeyPrefix + category
}

func buildProductEntity(input ProductInput, existing *models.Product) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProductInvalid
	}
	if input.Price.IsNegative() {
		return nil, ErrProductPriceInvalid
	}
	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = constants.ProductCategorySummer
	}
	if !constants.Contains(constants.ProductCategories, category) {
		return nil, ErrProductCategory
	}
	if input.StockQuantity < 0 {
		return nil, ErrProductInvalid
	}

	images := make([]string, 0, len(input.AdditionalImages))
	for _, image := range input.AdditionalImages {
		if trimmed := strings.TrimSpace(image); trimmed != "" {
			images = append(images, trimmed)
		}
	}

	product := &models.Product{IsActive: true}
	if existing != nil {
		product = existing
	}
	product.Title = title
	product.Description = strings.TrimSpace(input.Description)
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.Category = category
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.AdditionalImages = models.StringArray(images)
	product.StockQuantity = input.StockQuantity
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	return product, nil
}
