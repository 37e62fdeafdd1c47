package repository

import (
	"errors"
	"time"

	"github.com/binimoy-shop/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车快照数据访问接口。
// 每个存储键对应一条快照记录，payload 为购物车行数组的 JSON。
type CartRepository interface {
	GetByKey(storeKey string) (*models.CartSnapshot, error)
	Save(storeKey, payload string) error
	DeleteByKey(storeKey string) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByKey 按存储键读取快照，不存在时返回 nil
func (r *GormCartRepository) GetByKey(storeKey string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if err := r.db.Where("store_key = ?", storeKey).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// Save 写入或更新快照
func (r *GormCartRepository) Save(storeKey, payload string) error {
	now := time.Now()
	var existing models.CartSnapshot
	err := r.db.Where("store_key = ?", storeKey).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.CartSnapshot{
			StoreKey:  storeKey,
			Payload:   payload,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Updates(map[string]interface{}{
		"payload":    payload,
		"updated_at": now,
	}).Error
}

// DeleteByKey 删除快照
func (r *GormCartRepository) DeleteByKey(storeKey string) error {
	return r.db.Where("store_key = ?", storeKey).Delete(&models.CartSnapshot{}).Error
}
