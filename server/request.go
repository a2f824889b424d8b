package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Software78/payment-instruction-parser/transaction"
)

// Request-shape errors. These are boundary failures, reported with an HTTP
// error body, never with a domain status code.
var (
	// ErrBodyParseFailed is returned when the request body is not valid JSON.
	ErrBodyParseFailed = errors.New("failed to parse request body")
	// ErrShapeInvalid is returned when the body misses required fields or types.
	ErrShapeInvalid = errors.New("request shape validation failed")
	// ErrValidatorInit is returned when custom validator registration fails.
	ErrValidatorInit = errors.New("validator initialization failed")
)

// ProcessRequest is the body of POST /payment-instructions.
type ProcessRequest struct {
	Accounts    []AccountPayload `json:"accounts" validate:"required,min=1,dive"`
	Instruction string           `json:"instruction" validate:"required,notblank"`
}

// AccountPayload is one entry of the caller-supplied account snapshot.
type AccountPayload struct {
	ID       string          `json:"id" validate:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency" validate:"required"`
}

// CoreAccounts converts the payload into the core's account type, preserving
// the caller's ordering.
func (r *ProcessRequest) CoreAccounts() []transaction.Account {
	accounts := make([]transaction.Account, 0, len(r.Accounts))
	for _, payload := range r.Accounts {
		accounts = append(accounts, transaction.Account{
			ID:       payload.ID,
			Balance:  payload.Balance,
			Currency: payload.Currency,
		})
	}

	return accounts
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidators creates and configures the request-shape validator. The
// compiled schema is process-wide immutable state, shared read-only across
// concurrent requests.
func initValidators() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	if err := vld.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'notblank': %w", ErrValidatorInit, err)
	}

	return vld, nil
}

// getValidator returns the singleton validator instance.
func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidators()
	})

	return validate, errValidate
}

// parseProcessRequest decodes and shape-validates the request body.
func parseProcessRequest(c *fiber.Ctx) (*ProcessRequest, error) {
	var request ProcessRequest
	if err := c.BodyParser(&request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBodyParseFailed, err)
	}

	vld, err := getValidator()
	if err != nil {
		return nil, err
	}

	if err := vld.Struct(&request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeInvalid, err)
	}

	return &request, nil
}
