package repository

import (
	"strings"

	"github.com/qamees-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id string, onlyActive bool) (*models.Product, error)
	GetVariant(productID, variantID string) (*models.ProductVariant, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	ReplaceVariants(productID string, variants []models.ProductVariant) error
	Count() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func preloadVariants(query *gorm.DB) *gorm.DB {
	return query.Preload("Variants", func(db *gorm.DB) *gorm.DB {
		return db.Order("color ASC, size ASC")
	})
}

// List 商品列表（新品在前）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	query = query.Scopes(matchKeyword(filter.Search, "title", "description"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if filter.WithVariants {
		query = preloadVariants(query)
	}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据 ID 获取商品（含规格）
func (r *GormProductRepository) GetByID(id string, onlyActive bool) (*models.Product, error) {
	query := preloadVariants(r.db.Model(&models.Product{})).Where("id = ?", id)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	return findOne[models.Product](query)
}

// GetVariant 获取商品下的指定规格
func (r *GormProductRepository) GetVariant(productID, variantID string) (*models.ProductVariant, error) {
	return findOne[models.ProductVariant](r.db.Where("id = ? AND product_id = ?", variantID, productID))
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品（不级联规格）
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Variants").Save(product).Error
}

// Delete 删除商品（软删除）
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Product{}).Error
}

// ReplaceVariants 整体替换商品规格
func (r *GormProductRepository) ReplaceVariants(productID string, variants []models.ProductVariant) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductVariant{}).Error; err != nil {
		return err
	}
	if len(variants) == 0 {
		return nil
	}
	for i := range variants {
		variants[i].ProductID = productID
	}
	return r.db.Create(&variants).Error
}

// Count 商品总数
func (r *GormProductRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
