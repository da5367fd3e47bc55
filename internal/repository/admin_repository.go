package repository

import (
	"strings"
	"time"

	"github.com/qamees-next/internal/models"

	"gorm.io/gorm"
)

// AdminRepository 管理员账号
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	GetByID(id string) (*models.Admin, error)
	List() ([]models.Admin, error)
	Create(admin *models.Admin) error
	UpdateLastLogin(id string, at time.Time) error
}

// GormAdminRepository GORM 实现
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓库
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetByUsername 用户名不区分大小写
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	return findOne[models.Admin](r.db.Where("LOWER(username) = ?", strings.ToLower(username)))
}

// GetByID 按 ID 查询
func (r *GormAdminRepository) GetByID(id string) (*models.Admin, error) {
	return findOne[models.Admin](r.db.Where("id = ?", id))
}

// List 列表不读取密码哈希
func (r *GormAdminRepository) List() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Omit("password_hash").Order("created_at ASC").Find(&admins).Error
	if admins == nil {
		admins = []models.Admin{}
	}
	return admins, err
}

// Create 新建管理员
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// UpdateLastLogin 记录最后登录时间
func (r *GormAdminRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
}
