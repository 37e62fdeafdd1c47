package repository

import (
	"github.com/binimoy-shop/internal/models"

	"gorm.io/gorm"
)

// BannerRepository 轮播图数据访问接口
type BannerRepository interface {
	List(filter BannerListFilter) ([]models.Banner, int64, error)
	Create(banner *models.Banner) error
}

// GormBannerRepository GORM 实现
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository 创建轮播图仓库
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// List 轮播图列表
func (r *GormBannerRepository) List(filter BannerListFilter) ([]models.Banner, int64, error) {
	var banners []models.Banner

	query := r.db.Model(&models.Banner{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, id ASC").Find(&banners).Error; err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

// Create 创建轮播图
func (r *GormBannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}
