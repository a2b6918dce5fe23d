package handlers

import (
	"log"

	"lavka/internal/models"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests related to products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Post("/products", h.HandleCreateProduct)
}

type createProductResponse struct {
	models.Product
	Message string `json:"message"`
}

// HandleGetProducts returns the full catalog, newest first.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		return respondStoreError(c, err)
	}
	return respondList(c, products, len(products))
}

// HandleGetProduct returns a single product by its numeric id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(paramID(c, "id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return respondData(c, fiber.StatusOK, product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in services.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	product, err := h.productService.CreateProduct(in)
	if err != nil {
		return respondStoreError(c, err)
	}

	return respondData(c, fiber.StatusCreated, createProductResponse{
		Product: *product,
		Message: "Товар успешно создан",
	})
}

// paramID coerces a numeric path parameter. Non-numeric or negative input
// becomes zero, which the services reject as a missing id.
func paramID(c *fiber.Ctx, name string) uint {
	id, err := c.ParamsInt(name)
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}
