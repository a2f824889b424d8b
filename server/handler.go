package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Software78/payment-instruction-parser/log"
	"github.com/Software78/payment-instruction-parser/transaction"
)

// Handler serves the payment-instruction endpoints.
type Handler struct {
	processor *transaction.Processor
	logger    log.Logger
}

// NewHandler creates a Handler. A nil logger falls back to a no-op logger.
func NewHandler(processor *transaction.Processor, logger log.Logger) *Handler {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Handler{processor: processor, logger: logger}
}

// ProcessInstruction handles POST /payment-instructions: shape-validate the
// body, run the pipeline, and wrap the result in the response envelope.
// Domain failures are HTTP 400 with the full result; only boundary failures
// get the plain error body.
func (h *Handler) ProcessInstruction(c *fiber.Ctx) error {
	request, err := parseProcessRequest(c)
	if err != nil {
		return BadRequestError(c, "invalid_request", err.Error())
	}

	result := h.processor.Process(request.Instruction, request.CoreAccounts())

	h.logger.Log(c.UserContext(), log.LevelInfo, "instruction processed",
		log.String("status", string(result.Status)),
		log.String("status_code", string(result.StatusCode)),
		log.Int("accounts", len(result.Accounts)),
	)

	envelope := Envelope{
		Status:  result.Status,
		Message: result.StatusReason,
		Data:    result,
	}

	if result.Status == transaction.StatusFailed {
		return BadRequest(c, envelope)
	}

	return OK(c, envelope)
}

// Health returns HTTP 200 with a minimal liveness body.
func Health(c *fiber.Ctx) error {
	return OK(c, fiber.Map{"status": "ok"})
}

// Version returns the running service version from the environment.
func Version(c *fiber.Ctx) error {
	return OK(c, fiber.Map{
		"version":     GetenvOrDefault("VERSION", "0.0.0"),
		"requestDate": time.Now().UTC(),
	})
}
