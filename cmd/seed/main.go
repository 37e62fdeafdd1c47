package main

import (
	"github.com/binimoy-shop/internal/config"
	"github.com/binimoy-shop/internal/logger"
	"github.com/binimoy-shop/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认配送地区
	if err := models.InitDeliveryLocations(); err != nil {
		stdLog.Fatalf("Failed to seed delivery locations: %v", err)
	}

	// 分类
	categories := []models.Category{
		{ID: "honey", Name: "মধু", Icon: "🍯", SortOrder: 100},
		{ID: "ghee", Name: "ঘি", Icon: "🧈", SortOrder: 90},
		{ID: "oil", Name: "তেল", Icon: "🫒", SortOrder: 80},
		{ID: "dates", Name: "খেজুর", Icon: "🌴", SortOrder: 70},
		{ID: "nuts", Name: "বাদাম", Icon: "🥜", SortOrder: 60},
		{ID: "spices", Name: "মসলা", Icon: "🌶️", SortOrder: 50},
	}
	for i := range categories {
		if err := models.DB.FirstOrCreate(&categories[i], models.Category{ID: categories[i].ID}).Error; err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", categories[i].ID, err)
		}
	}

	// 商品
	products := []models.Product{
		{
			ID:            "sundarban-honey-500",
			Name:          "খাঁটি সুন্দরবনের মধু",
			Unit:          "৫০০ গ্রাম",
			Price:         models.NewMoneyFromInt(750),
			OriginalPrice: moneyPtr(900),
			Rating:        4.8,
			Reviews:       124,
			Stock:         40,
			CategoryID:    "honey",
			Image:         "/uploads/products/sundarban-honey.jpg",
			Description:   "সুন্দরবনের প্রাকৃতিক চাক থেকে সংগৃহীত খাঁটি মধু। কোনো চিনি বা কৃত্রিম উপাদান মেশানো হয়নি।",
			Seller:        "বিনিময় অর্গানিক",
			SortOrder:     100,
			IsActive:      true,
		},
		{
			ID:          "mustard-honey-500",
			Name:        "সরিষা ফুলের মধু",
			Unit:        "৫০০ গ্রাম",
			Price:       models.NewMoneyFromInt(450),
			Rating:      4.5,
			Reviews:     86,
			Stock:       60,
			CategoryID:  "honey",
			Image:       "/uploads/products/mustard-honey.jpg",
			Description: "সরিষা ক্ষেতের মৌচাক থেকে সংগৃহীত ঘন মধু, শীতকালে প্রাকৃতিকভাবে জমে যায়।",
			Seller:      "বিনিময় অর্গানিক",
			SortOrder:   95,
			IsActive:    true,
		},
		{
			ID:            "gawa-ghee-500",
			Name:          "গাওয়া ঘি",
			Unit:          "৫০০ গ্রাম",
			Price:         models.NewMoneyFromInt(1450),
			OriginalPrice: moneyPtr(1600),
			Rating:        4.9,
			Reviews:       210,
			Stock:         25,
			CategoryID:    "ghee",
			Image:         "/uploads/products/gawa-ghee.jpg",
			Description:   "দেশি গরুর দুধের ক্রিম থেকে ঐতিহ্যবাহী পদ্ধতিতে তৈরি খাঁটি গাওয়া ঘি।",
			Seller:        "বিনিময় অর্গানিক",
			SortOrder:     90,
			IsActive:      true,
		},
		{
			ID:          "mustard-oil-1l",
			Name:        "ঘানি ভাঙা সরিষার তেল",
			Unit:        "১ লিটার",
			Price:       models.NewMoneyFromInt(380),
			Rating:      4.6,
			Reviews:     145,
			Stock:       80,
			CategoryID:  "oil",
			Image:       "/uploads/products/mustard-oil.jpg",
			Description: "কাঠের ঘানিতে ভাঙা খাঁটি সরিষার তেল, ঝাঁঝালো স্বাদ ও প্রাকৃতিক গন্ধ অটুট।",
			Seller:      "বিনিময় অর্গানিক",
			SortOrder:   85,
			IsActive:    true,
		},
		{
			ID:            "coconut-oil-500",
			Name:          "নারকেল তেল",
			Unit:          "৫০০ মিলি",
			Price:         models.NewMoneyFromInt(420),
			OriginalPrice: moneyPtr(480),
			Rating:        4.4,
			Reviews:       52,
			Stock:         35,
			CategoryID:    "oil",
			Image:         "/uploads/products/coconut-oil.jpg",
			Description:   "কোল্ড প্রেসড ভার্জিন নারকেল তেল, রান্না ও চুলের যত্নে ব্যবহারযোগ্য।",
			Seller:        "বিনিময় অর্গানিক",
			SortOrder:     80,
			IsActive:      true,
		},
		{
			ID:            "ajwa-dates-500",
			Name:          "আজওয়া খেজুর",
			Unit:          "৫০০ গ্রাম",
			Price:         models.NewMoneyFromInt(1100),
			OriginalPrice: moneyPtr(1250),
			Rating:        4.7,
			Reviews:       98,
			Stock:         30,
			CategoryID:    "dates",
			Image:         "/uploads/products/ajwa-dates.jpg",
			Description:   "মদিনার প্রিমিয়াম আজওয়া খেজুর, নরম ও মিষ্টি।",
			Seller:        "বিনিময় অর্গানিক",
			SortOrder:     75,
			IsActive:      true,
		},
		{
			ID:          "mabroom-dates-500",
			Name:        "মাবরুম খেজুর",
			Unit:        "৫০০ গ্রাম",
			Price:       models.NewMoneyFromInt(850),
			Rating:      4.5,
			Reviews:     61,
			Stock:       45,
			CategoryID:  "dates",
			Image:       "/uploads/products/mabroom-dates.jpg",
			Description: "লম্বাটে আকারের রসালো মাবরুম খেজুর, সারা বছর সংরক্ষণযোগ্য।",
			Seller:      "বিনিময় অর্গানিক",
			SortOrder:   70,
			IsActive:    true,
		},
		{
			ID:          "cashew-250",
			Name:        "কাজু বাদাম",
			Unit:        "২৫০ গ্রাম",
			Price:       models.NewMoneyFromInt(380),
			Rating:      4.3,
			Reviews:     44,
			Stock:       55,
			CategoryID:  "nuts",
			Image:       "/uploads/products/cashew.jpg",
			Description: "বাছাই করা আস্ত কাজু বাদাম, ভাজা নয়।",
			Seller:      "বিনিময় অর্গানিক",
			SortOrder:   65,
			IsActive:    true,
		},
		{
			ID:            "almond-250",
			Name:          "কাঠ বাদাম",
			Unit:          "২৫০ গ্রাম",
			Price:         models.NewMoneyFromInt(350),
			OriginalPrice: moneyPtr(400),
			Rating:        4.6,
			Reviews:       73,
			Stock:         65,
			CategoryID:    "nuts",
			Image:         "/uploads/products/almond.jpg",
			Description:   "আমেরিকান কাঠ বাদাম, প্রতিদিনের পুষ্টির সহজ উৎস।",
			Seller:        "বিনিময় অর্গানিক",
			SortOrder:     60,
			IsActive:      true,
		},
		{
			ID:          "turmeric-250",
			Name:        "হলুদ গুঁড়া",
			Unit:        "২৫০ গ্রাম",
			Price:       models.NewMoneyFromInt(180),
			Rating:      4.4,
			Reviews:     39,
			Stock:       90,
			CategoryID:  "spices",
			Image:       "/uploads/products/turmeric.jpg",
			Description: "রোদে শুকানো দেশি হলুদ মেশিনে গুঁড়া করা, কোনো রং মেশানো হয়নি।",
			Seller:      "বিনিময় অর্গানিক",
			SortOrder:   55,
			IsActive:    true,
		},
		{
			ID:          "chili-250",
			Name:        "মরিচ গুঁড়া",
			Unit:        "২৫০ গ্রাম",
			Price:       models.NewMoneyFromInt(220),
			Rating:      4.2,
			Reviews:     28,
			Stock:       75,
			CategoryID:  "spices",
			Image:       "/uploads/products/chili.jpg",
			Description: "শুকনা মরিচ থেকে তৈরি ঝাল মরিচ গুঁড়া।",
			Seller:      "বিনিময় অর্গানিক",
			SortOrder:   50,
			IsActive:    true,
		},
	}
	for i := range products {
		if err := models.DB.FirstOrCreate(&products[i], models.Product{ID: products[i].ID}).Error; err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", products[i].ID, err)
		}
	}

	// 首页横幅
	banners := []models.Banner{
		{
			Title:     "খাঁটি অর্গানিক পণ্য",
			Subtitle:  "সরাসরি উৎস থেকে আপনার দরজায়",
			Image:     "/uploads/banners/organic.jpg",
			LinkURL:   "/products",
			IsActive:  true,
			SortOrder: 100,
		},
		{
			Title:     "মিরপুরে ফ্রি ডেলিভারি",
			Subtitle:  "আজই অর্ডার করুন",
			Image:     "/uploads/banners/delivery.jpg",
			LinkURL:   "/products",
			IsActive:  true,
			SortOrder: 90,
		},
	}
	for i := range banners {
		if err := models.DB.FirstOrCreate(&banners[i], models.Banner{Title: banners[i].Title}).Error; err != nil {
			stdLog.Fatalf("Failed to seed banner %s: %v", banners[i].Title, err)
		}
	}

	stdLog.Printf("Seed completed: %d categories, %d products, %d banners", len(categories), len(products), len(banners))
}

func moneyPtr(amount int64) *models.Money {
	m := models.NewMoneyFromInt(amount)
	return &m
}
