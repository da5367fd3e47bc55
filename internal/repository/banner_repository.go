package repository

import (
	"time"

	"github.com/qamees-next/internal/models"

	"gorm.io/gorm"
)

// BannerRepository 横幅数据访问接口
type BannerRepository interface {
	List(filter BannerListFilter) ([]models.PromotionalBanner, int64, error)
	ListVisible(now time.Time, limit int) ([]models.PromotionalBanner, error)
	GetByID(id string) (*models.PromotionalBanner, error)
	Create(banner *models.PromotionalBanner) error
	Update(banner *models.PromotionalBanner) error
	Delete(id string) error
}

// GormBannerRepository GORM 实现
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository 创建横幅仓库
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

func visibleAt(query *gorm.DB, now time.Time) *gorm.DB {
	return query.Where("is_active = ?", true).
		Where("(start_date IS NULL OR start_date <= ?)", now).
		Where("(end_date IS NULL OR end_date >= ?)", now)
}

// List 横幅列表（按展示顺序）
func (r *GormBannerRepository) List(filter BannerListFilter) ([]models.PromotionalBanner, int64, error) {
	var banners []models.PromotionalBanner
	query := r.db.Model(&models.PromotionalBanner{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OnlyValid {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		query = visibleAt(query, now)
	}
	query = query.Scopes(matchKeyword(filter.Search, "title", "subtitle"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := query.Order("display_order ASC, created_at DESC").Find(&banners).Error; err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

// ListVisible 获取当前可见的横幅
func (r *GormBannerRepository) ListVisible(now time.Time, limit int) ([]models.PromotionalBanner, error) {
	var banners []models.PromotionalBanner
	query := visibleAt(r.db.Model(&models.PromotionalBanner{}), now)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Order("display_order ASC, created_at DESC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// GetByID 根据 ID 获取横幅
func (r *GormBannerRepository) GetByID(id string) (*models.PromotionalBanner, error) {
	return findOne[models.PromotionalBanner](r.db.Where("id = ?", id))
}

// Create 创建横幅
func (r *GormBannerRepository) Create(banner *models.PromotionalBanner) error {
	return r.db.Create(banner).Error
}

// Update 更新横幅
func (r *GormBannerRepository) Update(banner *models.PromotionalBanner) error {
	return r.db.Save(banner).Error
}

// Delete 删除横幅
func (r *GormBannerRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.PromotionalBanner{}).Error
}
