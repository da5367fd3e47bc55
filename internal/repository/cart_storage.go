package repository

import (
	"context"
	"errors"
	"time"

	"github.com/qamees-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartStorage 基于 cart_snapshots 表的购物车持久化后端
type GormCartStorage struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCartStorage 创建数据库购物车存储
func NewCartStorage(db *gorm.DB) *GormCartStorage {
	return &GormCartStorage{db: db, now: time.Now}
}

// Get 读取持久化文档
func (s *GormCartStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var snapshot models.CartSnapshot
	err := s.db.WithContext(ctx).Where("storage_key = ?", key).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(snapshot.Payload), true, nil
}

// Set 写入持久化文档（存在则覆盖）
func (s *GormCartStorage) Set(ctx context.Context, key string, value []byte) error {
	snapshot := models.CartSnapshot{
		StorageKey: key,
		Payload:    string(value),
		UpdatedAt:  s.now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snapshot).Error
}

// Remove 删除持久化文档
func (s *GormCartStorage) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&models.CartSnapshot{}).Error
}

// PruneIdle 删除早于 before 未更新的购物车，返回删除数量
func (s *GormCartStorage) PruneIdle(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("updated_at < ?", before).Delete(&models.CartSnapshot{})
	return result.RowsAffected, result.Error
}
