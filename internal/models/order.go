package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（货到付款）
type Order struct {
	ID              string         `gorm:"primaryKey;type:varchar(36)" json:"id"`                                     // 主键
	CustomerID      *string        `gorm:"type:varchar(36);index" json:"customer_id,omitempty"`                       // 顾客ID（游客为空）
	CustomerName    string         `gorm:"type:varchar(120);not null" json:"customer_name"`                           // 顾客姓名
	CustomerEmail   string         `gorm:"type:varchar(255);not null;index" json:"customer_email"`                    // 顾客邮箱
	CustomerPhone   string         `gorm:"type:varchar(40);not null" json:"customer_phone"`                           // 顾客电话
	ShippingAddress string         `gorm:"type:text;not null" json:"shipping_address"`                                // 收货地址
	ShippingCity    string         `gorm:"type:varchar(120);not null" json:"shipping_city"`                           // 城市
	ShippingCountry string         `gorm:"type:varchar(120);not null;default:'Saudi Arabia'" json:"shipping_country"` // 国家
	Notes           string         `gorm:"type:text" json:"notes"`                                                    // 备注
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`                 // 订单总额
	Status          string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`           // 订单状态
	Locale          string         `gorm:"type:varchar(10)" json:"locale,omitempty"`                                  // 下单语言
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                                   // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                                // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate 生成主键
func (o *Order) BeforeCreate(*gorm.DB) error {
	ensureID(&o.ID)
	return nil
}
