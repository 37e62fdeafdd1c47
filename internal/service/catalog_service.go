package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/binimoy-shop/internal/constants"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/repository"
)

// ProductQuery 商品列表查询条件
type ProductQuery struct {
	Page       int
	PageSize   int
	CategoryID string
	Search     string
	PriceMin   *int64
	PriceMax   *int64
	Sort       string
}

// CatalogService 商品目录服务，提供商品、分类、配送地区与横幅的只读查询
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	bannerRepo   repository.BannerRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	bannerRepo repository.BannerRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		bannerRepo:   bannerRepo,
	}
}

// normalizeSort 将未知的排序方式回退到默认排序
func normalizeSort(sort string) string {
	switch sort {
	case constants.ProductSortPriceLow,
		constants.ProductSortPriceHigh,
		constants.ProductSortRating,
		constants.ProductSortName,
		constants.ProductSortNewest:
		return sort
	default:
		return constants.ProductSortDefault
	}
}

// ListProducts 按条件查询上架商品列表
func (s *CatalogService) ListProducts(query ProductQuery) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         query.Page,
		PageSize:     query.PageSize,
		CategoryID:   strings.TrimSpace(query.CategoryID),
		Search:       strings.TrimSpace(query.Search),
		Sort:         normalizeSort(query.Sort),
		OnlyActive:   true,
		WithCategory: true,
	}
	if query.PriceMin != nil && *query.PriceMin > 0 {
		v := decimal.NewFromInt(*query.PriceMin)
		filter.PriceMin = &v
	}
	if query.PriceMax != nil && *query.PriceMax > 0 {
		v := decimal.NewFromInt(*query.PriceMax)
		filter.PriceMax = &v
	}
	return s.productRepo.List(filter)
}

// GetProduct 查询单个上架商品，不存在时返回 ErrNotFound
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListRelated 查询同类推荐商品，排除当前商品自身
func (s *CatalogService) ListRelated(productID string, limit int) ([]models.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 4
	}
	items, _, err := s.productRepo.List(repository.ProductListFilter{
		Page:       1,
		PageSize:   limit + 1,
		CategoryID: product.CategoryID,
		Sort:       constants.ProductSortDefault,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	related := make([]models.Product, 0, limit)
	for _, item := range items {
		if item.ID == product.ID {
			continue
		}
		related = append(related, item)
		if len(related) >= limit {
			break
		}
	}
	return related, nil
}

// CategorySummary 分类及其商品数量
type CategorySummary struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// ListCategories 查询全部分类，附带每个分类下的商品数量
func (s *CatalogService) ListCategories() ([]CategorySummary, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	summaries := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryRepo.CountProducts(category.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, CategorySummary{Category: category, ProductCount: count})
	}
	return summaries, nil
}

// ListLocations 查询全部配送地区
func (s *CatalogService) ListLocations() ([]models.DeliveryLocation, error) {
	return s.locationRepo.List()
}

// ListBanners 查询启用中的首页横幅
func (s *CatalogService) ListBanners() ([]models.Banner, error) {
	banners, _, err := s.bannerRepo.List(repository.BannerListFilter{OnlyActive: true})
	return banners, err
}

// MaxPrice 查询上架商品的最高单价，用于价格筛选滑块的上限
func (s *CatalogService) MaxPrice() (int64, error) {
	max, err := s.productRepo.MaxPrice()
	if err != nil {
		return 0, err
	}
	return max.Ceil().IntPart(), nil
}
