package models

import "time"

// Category 分类表
type Category struct {
	ID        string    `gorm:"primarykey;type:varchar(64)" json:"id"`  // 分类标识
	Name      string    `gorm:"type:varchar(200);not null" json:"name"` // 分类名称（孟加拉语）
	Icon      string    `gorm:"type:varchar(500)" json:"icon"`          // 分类图标
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`      // 排序权重
	CreatedAt time.Time `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
