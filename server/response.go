package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Software78/payment-instruction-parser/transaction"
)

// Envelope is the top-level body of the instruction endpoint: outcome
// status, catalog message, and the full transaction result.
type Envelope struct {
	Status  transaction.Status `json:"status"`
	Message string             `json:"message"`
	Data    transaction.Result `json:"data"`
}

// ErrorResponse is the body for boundary errors such as malformed JSON or a
// request failing shape validation.
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// OK sends an HTTP 200 response with the given body.
func OK(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// BadRequest sends an HTTP 400 response with the given body.
func BadRequest(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// WriteError writes a structured boundary error response.
func WriteError(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    strconv.Itoa(status),
		Title:   title,
		Message: message,
	})
}

// BadRequestError writes a 400 boundary error.
func BadRequestError(c *fiber.Ctx, title, message string) error {
	return WriteError(c, fiber.StatusBadRequest, title, message)
}

// InternalServerError writes a 500 response with a generic message so
// internal details never leak.
func InternalServerError(c *fiber.Ctx) error {
	return WriteError(c, fiber.StatusInternalServerError, "internal_error", "internal server error")
}
