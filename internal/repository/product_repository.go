package repository

import (
	"errors"
	"strings"

	"github.com/binimoy-shop/internal/constants"
	"github.com/binimoy-shop/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	ListByIDs(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	MaxPrice() (models.Money, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if categoryID := strings.TrimSpace(filter.CategoryID); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(resolveProductOrder(filter.Sort)).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// resolveProductOrder 将排序方式映射为 SQL 排序子句
func resolveProductOrder(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case constants.ProductSortPriceLow:
		return "price ASC, id ASC"
	case constants.ProductSortPriceHigh:
		return "price DESC, id ASC"
	case constants.ProductSortRating:
		return "rating DESC, reviews DESC, id ASC"
	case constants.ProductSortName:
		return "name ASC, id ASC"
	case constants.ProductSortNewest:
		return "created_at DESC, id DESC"
	default:
		return "sort_order DESC, id ASC"
	}
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取商品
func (r *GormProductRepository) ListByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// MaxPrice 目录中上架商品的最高售价，用于价格区间筛选的上界
func (r *GormProductRepository) MaxPrice() (models.Money, error) {
	var result struct {
		Max models.Money
	}
	err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Select("COALESCE(MAX(price), 0) AS max").
		Scan(&result).Error
	if err != nil {
		return models.Money{}, err
	}
	return result.Max, nil
}
