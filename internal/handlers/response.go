package handlers

import (
	"errors"
	"log"

	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response wrapper used on every route.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// MsgInternalError is the fixed catch-all message; internal detail is logged,
// never echoed.
const MsgInternalError = "Внутренняя ошибка сервера"

const msgInvalidBody = "Некорректное тело запроса"

// respondData writes a success envelope with the given status and payload.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Data:    data,
	})
}

// respondList writes a success envelope with a count field for list routes.
func respondList(c *fiber.Ctx, data interface{}, count int) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// respondError writes a failure envelope.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Error:   message,
	})
}

// respondStoreError maps a service error to its HTTP status. Anything that is
// not a typed store error is logged and reported as a generic 500.
func respondStoreError(c *fiber.Ctx, err error) error {
	var se *services.StoreError
	if errors.As(err, &se) {
		return respondError(c, statusForKind(se.Kind), se.Message)
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return respondError(c, fiber.StatusInternalServerError, MsgInternalError)
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation, services.KindConflict:
		return fiber.StatusBadRequest
	case services.KindAuth:
		return fiber.StatusUnauthorized
	case services.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
