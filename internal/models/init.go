package models

import "github.com/binimoy-shop/internal/logger"

// defaultDeliveryLocations 默认配送地区（含固定配送费）
var defaultDeliveryLocations = []DeliveryLocation{
	{ID: "mirpur", Name: "মিরপুর", DeliveryCharge: NewMoneyFromInt(0), SortOrder: 100},
	{ID: "dhaka-city", Name: "ঢাকা সিটি", DeliveryCharge: NewMoneyFromInt(60), SortOrder: 90},
	{ID: "savar", Name: "সাভার", DeliveryCharge: NewMoneyFromInt(80), SortOrder: 80},
	{ID: "gazipur", Name: "গাজীপুর", DeliveryCharge: NewMoneyFromInt(100), SortOrder: 70},
	{ID: "narayanganj", Name: "নারায়ণগঞ্জ", DeliveryCharge: NewMoneyFromInt(100), SortOrder: 60},
	{ID: "outside-dhaka", Name: "ঢাকার বাইরে", DeliveryCharge: NewMoneyFromInt(120), SortOrder: 50},
}

// InitDeliveryLocations 初始化默认配送地区。
// 地区表非空时不做任何改动，避免覆盖运营调整过的配送费。
func InitDeliveryLocations() error {
	var count int64
	if err := DB.Model(&DeliveryLocation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, location := range defaultDeliveryLocations {
		if err := DB.Create(&location).Error; err != nil {
			return err
		}
	}
	logger.Infow("default_delivery_locations_created", "count", len(defaultDeliveryLocations))
	return nil
}
