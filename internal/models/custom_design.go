package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomDesign 定制设计请求
type CustomDesign struct {
	ID                string         `gorm:"primaryKey;type:varchar(36)" json:"id"`                           // 主键
	CustomerName      string         `gorm:"type:varchar(120);not null" json:"customer_name"`                 // 顾客姓名
	CustomerEmail     string         `gorm:"type:varchar(255);not null;index" json:"customer_email"`          // 顾客邮箱
	CustomerPhone     string         `gorm:"type:varchar(40);not null" json:"customer_phone"`                 // 顾客电话
	DesignDescription string         `gorm:"type:text;not null" json:"design_description"`                    // 设计描述
	Quantity          int            `gorm:"not null;default:1" json:"quantity"`                              // 数量
	Size              string         `gorm:"type:varchar(20)" json:"size"`                                    // 尺码
	Color             string         `gorm:"type:varchar(50)" json:"color"`                                   // 颜色
	ReferenceImages   StringArray    `gorm:"type:json" json:"reference_images"`                               // 参考图片
	EstimatedPrice    *Money         `gorm:"type:decimal(20,2)" json:"estimated_price"`                       // 预估价格
	Notes             string         `gorm:"type:text" json:"notes"`                                          // 备注
	Status            string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // 状态
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                                      // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                                  // 软删除时间
}

// TableName 指定表名
func (CustomDesign) TableName() string {
	return "custom_designs"
}

// BeforeCreate 生成主键
func (d *CustomDesign) BeforeCreate(*gorm.DB) error {
	ensureID(&d.ID)
	return nil
}
