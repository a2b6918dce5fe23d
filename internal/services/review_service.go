package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lavka/internal/models"
	"lavka/internal/repositories"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ReviewService handles business logic related to reviews. Review creation
// requires both the user and the product to exist.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		validate:    validator.New(),
	}
}

// CreateReviewInput is the input for CreateReview. All fields are required;
// stars must be an integer between 1 and 5.
type CreateReviewInput struct {
	UserID    uint   `json:"user_id" validate:"required"`
	ProductID uint   `json:"product_id" validate:"required"`
	Review    string `json:"review" validate:"required"`
	Stars     int    `json:"stars" validate:"required,gte=1,lte=5"`
}

// UnmarshalJSON coerces numeric fields that arrive as strings, the way the
// browser submits form values.
func (in *CreateReviewInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID    interface{} `json:"user_id"`
		ProductID interface{} `json:"product_id"`
		Review    string      `json:"review"`
		Stars     interface{} `json:"stars"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.UserID = coerceUint(raw.UserID)
	in.ProductID = coerceUint(raw.ProductID)
	in.Review = raw.Review
	in.Stars = coerceInt(raw.Stars)
	return nil
}

// GetReviewsByProductID retrieves a product's reviews, newest first, each
// annotated with the reviewer's name.
func (s *ReviewService) GetReviewsByProductID(productID uint) ([]models.ReviewWithUser, error) {
	if productID == 0 {
		return nil, newValidationError(MsgProductIDRequired)
	}
	return s.reviewRepo.GetByProductID(productID)
}

// GetReviewsByUserID retrieves a user's reviews, newest first, each annotated
// with the product's name.
func (s *ReviewService) GetReviewsByUserID(userID uint) ([]models.ReviewWithProduct, error) {
	if userID == 0 {
		return nil, newValidationError(MsgUserIDRequired)
	}
	return s.reviewRepo.GetByUserID(userID)
}

// CreateReview validates the input, checks that both referenced rows exist
// and inserts the review.
func (s *ReviewService) CreateReview(in CreateReviewInput) (*models.Review, error) {
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				// Stars outside [1,5] gets its own message; a zero value
				// fails "required" and reads as a missing field instead.
				if fe.Field() == "Stars" && (fe.Tag() == "gte" || fe.Tag() == "lte") {
					return nil, newValidationError(MsgStarsOutOfRange)
				}
			}
		}
		return nil, newValidationError(MsgAllFieldsRequired)
	}

	if _, err := s.userRepo.GetByID(in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newConflictError(MsgUserOrProductMissing)
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if _, err := s.productRepo.GetByID(in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newConflictError(MsgUserOrProductMissing)
		}
		return nil, fmt.Errorf("failed to check product: %w", err)
	}

	review := &models.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Review:    in.Review,
		Stars:     in.Stars,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		// The schema-level foreign keys back up the lookups above.
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") ||
			strings.Contains(err.Error(), "violates foreign key constraint") {
			return nil, newConflictError(MsgUserOrProductMissing)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}
