package repositories

import "lavka/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByProductID(productID uint) ([]models.ReviewWithUser, error)
	GetByUserID(userID uint) ([]models.ReviewWithProduct, error)
}
