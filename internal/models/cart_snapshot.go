package models

import "time"

// CartSnapshot 购物车持久化文档（数据库存储后端）
type CartSnapshot struct {
	StorageKey string    `gorm:"primaryKey;type:varchar(120)" json:"storage_key"` // 持久化 key
	Payload    string    `gorm:"type:text;not null" json:"payload"`               // 持久化文档
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`                         // 更新时间
}

// TableName 指定表名
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
