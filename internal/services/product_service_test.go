package services_test

import (
	"testing"

	"lavka/internal/models"
	"lavka/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: 2, Name: "Product B", Price: 20.0},
		{ID: 1, Name: "Product A", Price: 10.0},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: 1, Name: "Product A", Price: 10.0}

	// Successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	// Product not found
	mockRepo.On("GetByID", uint(99)).Return(nil, notFoundErr("product")).Once()
	_, err = service.GetProductByID(99)
	var se *services.StoreError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, services.KindNotFound, se.Kind)
	assert.Equal(t, services.MsgProductNotFound, se.Message)
	mockRepo.AssertExpectations(t)

	// Zero id (missing or non-numeric path parameter)
	_, err = service.GetProductByID(0)
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, services.KindNotFound, se.Kind)
	mockRepo.AssertNotCalled(t, "GetByID", uint(0))
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Successful creation
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	product, err := service.CreateProduct(services.CreateProductInput{
		Name:     "New Product",
		Price:    50.0,
		Category: "Test",
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Product", product.Name)
	assert.Equal(t, 50.0, product.Price)
	mockRepo.AssertExpectations(t)

	// Missing name or price
	var se *services.StoreError
	for _, in := range []services.CreateProductInput{
		{Price: 50.0},
		{Name: "No Price"},
	} {
		_, err = service.CreateProduct(in)
		assert.ErrorAs(t, err, &se)
		assert.Equal(t, services.KindValidation, se.Kind)
		assert.Equal(t, services.MsgNamePriceRequired, se.Message)
	}
}
