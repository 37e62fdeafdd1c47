package provider

import (
	"github.com/binimoy-shop/internal/config"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/repository"
	"github.com/binimoy-shop/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	LocationRepo repository.LocationRepository
	CartRepo     repository.CartRepository
	BannerRepo   repository.BannerRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, c.LocationRepo, c.BannerRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.LocationRepo, c.ProductRepo, c.Config.Store)
}
