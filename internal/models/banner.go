package models

import (
	"time"

	"gorm.io/gorm"
)

// PromotionalBanner 首页促销横幅
type PromotionalBanner struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`        // 主键
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`      // 标题
	Subtitle     string         `gorm:"type:varchar(500)" json:"subtitle"`            // 副标题
	ImageURL     string         `gorm:"type:varchar(1000);not null" json:"image_url"` // 图片
	LinkURL      string         `gorm:"type:varchar(1000)" json:"link_url"`           // 跳转链接
	ButtonText   string         `gorm:"type:varchar(60)" json:"button_text"`          // 按钮文案
	DisplayOrder int            `gorm:"default:0;index" json:"display_order"`         // 展示顺序
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`          // 是否启用
	StartDate    *time.Time     `gorm:"index" json:"start_date"`                      // 生效时间
	EndDate      *time.Time     `gorm:"index" json:"end_date"`                        // 失效时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                   // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除
}

// TableName 指定表名
func (PromotionalBanner) TableName() string {
	return "promotional_banners"
}

// BeforeCreate 生成主键
func (b *PromotionalBanner) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

// VisibleAt 判断横幅在指定时间是否可见
func (b PromotionalBanner) VisibleAt(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
