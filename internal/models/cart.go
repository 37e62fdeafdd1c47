package models

import "time"

// CartLine 购物车行。内嵌商品快照，目录后续变更不影响已有购物车的渲染。
type CartLine struct {
	ProductID string `json:"product_id"` // 商品标识（购物车内唯一）
	Name      string `json:"name"`       // 商品名称快照
	Unit      string `json:"unit"`       // 单位快照
	Price     Money  `json:"price"`      // 单价快照
	Image     string `json:"image"`      // 图片快照
	Quantity  int    `json:"quantity"`   // 数量（恒为正整数）
}

// LineTotal 行小计 = 单价 × 数量
func (l CartLine) LineTotal() Money {
	return l.Price.MulInt(l.Quantity)
}

// CartSnapshot 设备本地购物车持久化载体。
// Payload 为 CartLine 数组的 JSON 序列化，数组顺序即插入顺序。
type CartSnapshot struct {
	ID        uint      `gorm:"primarykey" json:"id"`                            // 主键
	StoreKey  string    `gorm:"uniqueIndex;not null;type:varchar(128)" json:"store_key"` // 应用级存储键（按设备区分）
	Payload   string    `gorm:"type:text" json:"payload"`                        // 序列化的购物车行数组
	CreatedAt time.Time `json:"created_at"`                                      // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                         // 更新时间
}

// TableName 指定表名
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
