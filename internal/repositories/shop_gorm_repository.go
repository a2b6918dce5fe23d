package repositories

import (
	"fmt"

	"lavka/internal/models"

	"gorm.io/gorm"
)

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{
		db: db,
	}
}

// GetAll retrieves all shops, newest first.
func (r *GORMShopRepository) GetAll() ([]models.Shop, error) {
	shops := make([]models.Shop, 0)
	if err := r.db.Order("created_at DESC, id DESC").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shops: %w", err)
	}
	return shops, nil
}

// Create creates a new shop in the database.
func (r *GORMShopRepository) Create(shop *models.Shop) error {
	if err := r.db.Create(shop).Error; err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// Count returns the number of shop rows.
func (r *GORMShopRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Shop{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count shops: %w", err)
	}
	return count, nil
}
