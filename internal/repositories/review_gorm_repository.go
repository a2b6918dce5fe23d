package repositories

import (
	"fmt"

	"lavka/internal/models"

	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByProductID retrieves all reviews of a product, newest first, each
// annotated with the reviewing user's name. The LEFT JOIN leaves user_name
// NULL when the referenced user row is gone.
func (r *GORMReviewRepository) GetByProductID(productID uint) ([]models.ReviewWithUser, error) {
	reviews := make([]models.ReviewWithUser, 0)
	if err := r.db.Model(&models.Review{}).
		Select("reviews.id, reviews.user_id, reviews.product_id, reviews.review, reviews.stars, reviews.created_at, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC, reviews.id DESC").
		Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %d: %w", productID, err)
	}
	return reviews, nil
}

// GetByUserID retrieves all reviews written by a user, newest first, each
// annotated with the reviewed product's name.
func (r *GORMReviewRepository) GetByUserID(userID uint) ([]models.ReviewWithProduct, error) {
	reviews := make([]models.ReviewWithProduct, 0)
	if err := r.db.Model(&models.Review{}).
		Select("reviews.id, reviews.user_id, reviews.product_id, reviews.review, reviews.stars, reviews.created_at, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Where("reviews.user_id = ?", userID).
		Order("reviews.created_at DESC, reviews.id DESC").
		Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for user %d: %w", userID, err)
	}
	return reviews, nil
}
