package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品表。目录为只读数据，由 cmd/seed 写入后不再修改。
type Product struct {
	ID            string    `gorm:"primarykey;type:varchar(64)" json:"id"`       // 商品标识（目录内唯一）
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`      // 商品名称（孟加拉语）
	Unit          string    `gorm:"type:varchar(50)" json:"unit"`                // 计量单位标签（যেমন ৫০০ গ্রাম）
	Price         Money     `gorm:"type:decimal(20,2);not null" json:"price"`    // 售价
	OriginalPrice *Money    `gorm:"type:decimal(20,2)" json:"original_price"`    // 原价（用于折扣展示，存在时不低于售价）
	Rating        float64   `gorm:"not null;default:0" json:"rating"`            // 评分
	Reviews       int       `gorm:"not null;default:0" json:"reviews"`           // 评价数
	Stock         int       `gorm:"not null;default:0" json:"stock"`             // 库存数量
	CategoryID    string    `gorm:"type:varchar(64);not null;index" json:"category_id"` // 分类标识
	Image         string    `gorm:"type:varchar(500)" json:"image"`              // 商品图片
	Description   string    `gorm:"type:text" json:"description"`                // 商品描述
	Seller        string    `gorm:"type:varchar(200)" json:"seller"`             // 卖家名称
	SortOrder     int       `gorm:"default:0;index" json:"sort_order"`           // 排序权重
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`         // 是否上架
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                  // 更新时间

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// DiscountPercent 按原价计算折扣百分比，无原价或原价无效时返回 0
func (p *Product) DiscountPercent() int {
	if p == nil || p.OriginalPrice == nil {
		return 0
	}
	original := p.OriginalPrice.Decimal
	if original.LessThanOrEqual(decimal.Zero) || original.LessThanOrEqual(p.Price.Decimal) {
		return 0
	}
	percent := original.Sub(p.Price.Decimal).
		Div(original).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(percent.IntPart())
}
