package handlers

import (
	"log"
	"time"

	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
}

type registerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	user, err := h.authService.Register(in)
	if err != nil {
		return respondStoreError(c, err)
	}

	return respondData(c, fiber.StatusCreated, registerResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Message: "Пользователь успешно зарегистрирован",
	})
}

// HandleLogin checks credentials and returns the user's public fields.
// There is no token or session; callers re-send credentials per request.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	user, err := h.authService.Login(in)
	if err != nil {
		return respondStoreError(c, err)
	}

	return respondData(c, fiber.StatusOK, loginResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Message:   "Авторизация успешна",
	})
}
