package repositories

import "lavka/internal/models"

// ShopRepository defines the interface for shop data access.
type ShopRepository interface {
	GetAll() ([]models.Shop, error)
	Create(shop *models.Shop) error
	Count() (int64, error)
}
