package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProductVariant 商品规格（尺码/颜色）
type ProductVariant struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`             // 主键
	ProductID     string    `gorm:"type:varchar(36);not null;index" json:"product_id"` // 商品ID
	Size          string    `gorm:"type:varchar(20)" json:"size"`                      // 尺码
	Color         string    `gorm:"type:varchar(50)" json:"color"`                     // 颜色
	SKU           string    `gorm:"type:varchar(100);index" json:"sku"`                // SKU 编码
	Price         *Money    `gorm:"type:decimal(20,2)" json:"price,omitempty"`         // 覆盖价格（为空则使用商品价格）
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`          // 库存（仅展示）
	CreatedAt     time.Time `json:"created_at"`                                        // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                        // 更新时间
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}

// BeforeCreate 生成主键
func (v *ProductVariant) BeforeCreate(*gorm.DB) error {
	ensureID(&v.ID)
	return nil
}

// Label 规格展示文案，如 "Black / M"
func (v ProductVariant) Label() string {
	color := strings.TrimSpace(v.Color)
	size := strings.TrimSpace(v.Size)
	switch {
	case color != "" && size != "":
		return fmt.Sprintf("%s / %s", color, size)
	case color != "":
		return color
	default:
		return size
	}
}
