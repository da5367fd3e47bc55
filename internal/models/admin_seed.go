package models

import (
	"errors"
	"strings"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const devAdminPassword = "admin123"

// ErrAdminPasswordRequired release 模式下空库必须显式配置默认管理员密码
var ErrAdminPasswordRequired = errors.New("admin.default_password is required in release mode")

// EnsureDefaultAdmin 管理员表为空时创建首个 admin 账号
// 开发模式未配置密码时使用 admin123，返回值标记是否用了该密码。
func EnsureDefaultAdmin(db *gorm.DB, cfg config.AdminConfig, release bool) (created, devPassword bool, err error) {
	var count int64
	if err := db.Model(&Admin{}).Count(&count).Error; err != nil {
		return false, false, err
	}
	if count > 0 {
		return false, false, nil
	}

	username := strings.TrimSpace(cfg.DefaultUsername)
	if username == "" {
		username = "admin"
	}
	password := cfg.DefaultPassword
	if password == "" {
		if release {
			return false, false, ErrAdminPasswordRequired
		}
		password, devPassword = devAdminPassword, true
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, false, err
	}
	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         constants.AdminRoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, false, err
	}
	return true, devPassword, nil
}
