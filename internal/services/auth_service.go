package services

import (
	"errors"
	"fmt"
	"strings"

	"lavka/internal/models"
	"lavka/internal/repositories"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AuthService handles registration and login.
//
// Credentials are compared in plaintext against the stored password, exactly
// as the persisted schema expects. This is a deliberate parity choice, not an
// endorsement; see DESIGN.md.
type AuthService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// RegisterInput is the input for Register. Name is optional.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the input for Login.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user. Email must not be taken by an existing user.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(MsgEmailPasswordRequired)
	}

	if existing, err := s.userRepo.GetByEmail(in.Email); err == nil && existing != nil {
		return nil, newConflictError(MsgEmailTaken)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}
	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index on email catches it.
		if isDuplicateKey(err) {
			return nil, newConflictError(MsgEmailTaken)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login returns the user matching the exact (email, password) pair.
func (s *AuthService) Login(in LoginInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(MsgEmailPasswordRequired)
	}

	user, err := s.userRepo.GetByEmailAndPassword(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAuthError(MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return user, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// gorm translates it for postgres; the sqlite driver surfaces the raw text.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key")
}
