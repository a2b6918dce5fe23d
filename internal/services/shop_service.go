package services

import (
	"encoding/json"
	"fmt"

	"lavka/internal/models"
	"lavka/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ShopService handles business logic related to shop locations.
type ShopService struct {
	repo     repositories.ShopRepository
	validate *validator.Validate
}

// NewShopService creates a new ShopService.
func NewShopService(repo repositories.ShopRepository) *ShopService {
	return &ShopService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateShopInput is the input for CreateShop. Only the address is required;
// coordinates stay NULL when omitted.
type CreateShopInput struct {
	Address   string   `json:"address" validate:"required"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// UnmarshalJSON coerces coordinates that arrive as strings, the way the
// browser submits form values.
func (in *CreateShopInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Address   string      `json:"address"`
		Phone     string      `json:"phone"`
		Latitude  interface{} `json:"latitude"`
		Longitude interface{} `json:"longitude"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.Address = raw.Address
	in.Phone = raw.Phone
	in.Latitude = coerceFloatPtr(raw.Latitude)
	in.Longitude = coerceFloatPtr(raw.Longitude)
	return nil
}

// GetAllShops retrieves all shops ordered by creation time descending.
func (s *ShopService) GetAllShops() ([]models.Shop, error) {
	return s.repo.GetAll()
}

// CreateShop creates a new shop.
func (s *ShopService) CreateShop(in CreateShopInput) (*models.Shop, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(MsgAddressRequired)
	}

	shop := &models.Shop{
		Address:   in.Address,
		Phone:     in.Phone,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := s.repo.Create(shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	return shop, nil
}
