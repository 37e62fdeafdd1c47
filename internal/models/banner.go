package models

import "time"

// Banner 首页轮播图
type Banner struct {
	ID        uint      `gorm:"primarykey" json:"id"`                // 主键
	Title     string    `gorm:"type:varchar(200)" json:"title"`      // 标题
	Subtitle  string    `gorm:"type:varchar(500)" json:"subtitle"`   // 副标题
	Image     string    `gorm:"type:varchar(500)" json:"image"`      // 图片
	LinkURL   string    `gorm:"type:varchar(500)" json:"link_url"`   // 跳转链接（可为空）
	IsActive  bool      `gorm:"default:true;index" json:"is_active"` // 是否展示
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`   // 排序权重
	CreatedAt time.Time `json:"created_at"`                          // 创建时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}
