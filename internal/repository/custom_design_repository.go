package repository

import (
	"strings"

	"github.com/qamees-next/internal/models"

	"gorm.io/gorm"
)

// CustomDesignRepository 定制请求数据访问接口
type CustomDesignRepository interface {
	List(filter CustomDesignListFilter) ([]models.CustomDesign, int64, error)
	GetByID(id string) (*models.CustomDesign, error)
	Create(design *models.CustomDesign) error
	Update(design *models.CustomDesign) error
	Count() (int64, error)
}

// GormCustomDesignRepository GORM 实现
type GormCustomDesignRepository struct {
	db *gorm.DB
}

// NewCustomDesignRepository 创建定制请求仓库
func NewCustomDesignRepository(db *gorm.DB) *GormCustomDesignRepository {
	return &GormCustomDesignRepository{db: db}
}

// List 定制请求列表（新请求在前）
func (r *GormCustomDesignRepository) List(filter CustomDesignListFilter) ([]models.CustomDesign, int64, error) {
	query := r.db.Model(&models.CustomDesign{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var designs []models.CustomDesign
	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := query.Order("created_at DESC").Find(&designs).Error; err != nil {
		return nil, 0, err
	}
	return designs, total, nil
}

// GetByID 根据 ID 获取定制请求
func (r *GormCustomDesignRepository) GetByID(id string) (*models.CustomDesign, error) {
	return findOne[models.CustomDesign](r.db.Where("id = ?", id))
}

// Create 创建定制请求
func (r *GormCustomDesignRepository) Create(design *models.CustomDesign) error {
	return r.db.Create(design).Error
}

// Update 更新定制请求
func (r *GormCustomDesignRepository) Update(design *models.CustomDesign) error {
	return r.db.Save(design).Error
}

// Count 定制请求总数
func (r *GormCustomDesignRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.CustomDesign{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
