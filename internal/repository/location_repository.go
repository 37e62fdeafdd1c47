package repository

import (
	"errors"

	"github.com/binimoy-shop/internal/models"

	"gorm.io/gorm"
)

// LocationRepository 配送地区数据访问接口
type LocationRepository interface {
	List() ([]models.DeliveryLocation, error)
	GetByID(id string) (*models.DeliveryLocation, error)
	Create(location *models.DeliveryLocation) error
}

// GormLocationRepository GORM 实现
type GormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository 创建配送地区仓库
func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// List 配送地区列表
func (r *GormLocationRepository) List() ([]models.DeliveryLocation, error) {
	var locations []models.DeliveryLocation
	if err := r.db.Order("sort_order DESC, id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByID 根据 ID 获取配送地区，不存在时返回 nil
func (r *GormLocationRepository) GetByID(id string) (*models.DeliveryLocation, error) {
	var location models.DeliveryLocation
	if err := r.db.Where("id = ?", id).First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// Create 创建配送地区
func (r *GormLocationRepository) Create(location *models.DeliveryLocation) error {
	return r.db.Create(location).Error
}
