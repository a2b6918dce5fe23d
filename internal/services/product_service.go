package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"lavka/internal/models"
	"lavka/internal/repositories"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateProductInput is the input for CreateProduct. Description, image URL
// and category are optional.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

// UnmarshalJSON coerces a price that arrives as a string, the way the
// browser submits form values.
func (in *CreateProductInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string      `json:"name"`
		Price       interface{} `json:"price"`
		Description string      `json:"description"`
		ImageURL    string      `json:"image_url"`
		Category    string      `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.Name = raw.Name
	in.Price = coerceFloat(raw.Price)
	in.Description = raw.Description
	in.ImageURL = raw.ImageURL
	in.Category = raw.Category
	return nil
}

// GetAllProducts retrieves all products ordered by creation time descending.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product. A zero id (missing or
// non-numeric path parameter) is treated the same as an unknown one.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, newNotFoundError(MsgProductIDRequired)
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError(MsgProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// CreateProduct creates a new product. Name and price are required.
func (s *ProductService) CreateProduct(in CreateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(MsgNamePriceRequired)
	}

	product := &models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}
