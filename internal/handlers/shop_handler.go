package handlers

import (
	"log"

	"lavka/internal/models"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ShopHandler handles HTTP requests related to shop locations.
type ShopHandler struct {
	shopService *services.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// RegisterRoutes registers the shop routes with the Fiber app.
func (h *ShopHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/shops", h.HandleGetShops)
	router.Post("/shops", h.HandleCreateShop)
}

type createShopResponse struct {
	models.Shop
	Message string `json:"message"`
}

// HandleGetShops returns all shop locations, newest first.
func (h *ShopHandler) HandleGetShops(c *fiber.Ctx) error {
	shops, err := h.shopService.GetAllShops()
	if err != nil {
		return respondStoreError(c, err)
	}
	return respondList(c, shops, len(shops))
}

// HandleCreateShop creates a new shop location.
func (h *ShopHandler) HandleCreateShop(c *fiber.Ctx) error {
	var in services.CreateShopInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing create shop request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	shop, err := h.shopService.CreateShop(in)
	if err != nil {
		return respondStoreError(c, err)
	}

	return respondData(c, fiber.StatusCreated, createShopResponse{
		Shop:    *shop,
		Message: "Магазин успешно создан",
	})
}
