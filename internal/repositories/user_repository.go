package repositories

import "lavka/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByEmailAndPassword(email, password string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
