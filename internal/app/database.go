package app

import (
	"fmt"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"
)

// PrepareDatabase 连接、迁移并保证至少有一个管理员
func PrepareDatabase(cfg *config.Config) error {
	if err := models.InitDB(cfg.Database); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	if err := models.AutoMigrate(models.DB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	created, devPassword, err := models.EnsureDefaultAdmin(models.DB, cfg.Admin, cfg.Server.Mode == "release")
	switch {
	case err != nil:
		// 缺少管理员不影响前台运行
		logger.Warnw("default_admin_skipped", "error", err)
	case devPassword:
		logger.Warnw("default_admin_created_with_dev_password", "username", cfg.Admin.DefaultUsername)
	case created:
		logger.Infow("default_admin_created", "username", cfg.Admin.DefaultUsername)
	}
	return nil
}
