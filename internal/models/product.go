package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID               string         `gorm:"primaryKey;type:varchar(36)" json:"id"`                            // 主键
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`                          // 标题
	Description      string         `gorm:"type:text" json:"description"`                                     // 描述
	Price            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`               // 价格
	Category         string         `gorm:"type:varchar(20);not null;default:'summer';index" json:"category"` // 分类（summer/winter/custom）
	ImageURL         string         `gorm:"type:varchar(1000)" json:"image_url"`                              // 主图
	AdditionalImages StringArray    `gorm:"type:json" json:"additional_images"`                               // 附图
	StockQuantity    int            `gorm:"not null;default:0" json:"stock_quantity"`                         // 库存（仅展示）
	IsActive         bool           `gorm:"default:true;index" json:"is_active"`                              // 是否上架
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt        time.Time      `json:"updated_at"`                                                       // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                                   // 软删除时间

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"` // 规格列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeCreate 生成主键
func (p *Product) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
