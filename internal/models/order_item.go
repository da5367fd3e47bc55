package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
type OrderItem struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                    // 主键
	OrderID      string    `gorm:"type:varchar(36);not null;index" json:"order_id"`          // 订单ID
	ProductID    string    `gorm:"type:varchar(36);not null;index" json:"product_id"`        // 商品ID
	VariantID    string    `gorm:"type:varchar(36)" json:"variant_id,omitempty"`             // 规格ID（购物车合并键）
	ProductTitle string    `gorm:"type:varchar(255);not null" json:"product_title"`          // 商品标题快照
	VariantInfo  string    `gorm:"type:varchar(120)" json:"variant_info"`                    // 规格快照
	Quantity     int       `gorm:"not null" json:"quantity"`                                 // 数量
	UnitPrice    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // 单价
	TotalPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 小计
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate 生成主键
func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
