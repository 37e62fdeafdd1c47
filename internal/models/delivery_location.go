package models

import "time"

// DeliveryLocation 配送地区表，配送费为固定金额
type DeliveryLocation struct {
	ID             string    `gorm:"primarykey;type:varchar(64)" json:"id"`               // 地区标识
	Name           string    `gorm:"type:varchar(200);not null" json:"name"`              // 地区名称（孟加拉语）
	DeliveryCharge Money     `gorm:"type:decimal(20,2);not null" json:"delivery_charge"`  // 配送费（非负）
	SortOrder      int       `gorm:"default:0;index" json:"sort_order"`                   // 排序权重
	CreatedAt      time.Time `json:"created_at"`                                          // 创建时间
}

// TableName 指定表名
func (DeliveryLocation) TableName() string {
	return "delivery_locations"
}

// IsFreeDelivery 配送费为零视为免费配送
func (l DeliveryLocation) IsFreeDelivery() bool {
	return l.DeliveryCharge.IsZero()
}
