package handlers

import (
	"log"

	"lavka/internal/models"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests related to reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products/:id/reviews", h.HandleGetProductReviews)
	router.Get("/users/:id/reviews", h.HandleGetUserReviews)
	router.Post("/reviews", h.HandleCreateReview)
}

type createReviewResponse struct {
	models.Review
	Message string `json:"message"`
}

// HandleGetProductReviews lists a product's reviews with reviewer names.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetReviewsByProductID(paramID(c, "id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return respondList(c, reviews, len(reviews))
}

// HandleGetUserReviews lists a user's reviews with product names.
func (h *ReviewHandler) HandleGetUserReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetReviewsByUserID(paramID(c, "id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return respondList(c, reviews, len(reviews))
}

// HandleCreateReview creates a new review for an existing user and product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var in services.CreateReviewInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing create review request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	review, err := h.reviewService.CreateReview(in)
	if err != nil {
		return respondStoreError(c, err)
	}

	return respondData(c, fiber.StatusCreated, createReviewResponse{
		Review:  *review,
		Message: "Отзыв успешно добавлен",
	})
}
