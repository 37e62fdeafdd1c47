package router

import (
	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/config"
	publichandlers "github.com/binimoy-shop/internal/http/handlers/public"
	"github.com/binimoy-shop/internal/logger"
	"github.com/binimoy-shop/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开目录接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/locations", publicHandler.ListLocations)
			public.GET("/banners", publicHandler.ListBanners)
		}

		// 购物车接口（按 X-Device-ID 区分设备）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.UpsertCartItem)
			cart.DELETE("/items/:product_id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 结算接口
		checkout := apiV1.Group("/checkout")
		{
			checkout.POST("/preview", publicHandler.PreviewCheckout)
		}
	}

	return r
}
