package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidSimulateBody is returned when the simulate body is not a JSON
// object with a sats_in array.
var ErrInvalidSimulateBody = fiber.NewError(fiber.StatusBadRequest, "body must carry a sats_in array")

// ErrStepOutOfRangeBadRequest maps an out-of-window step to a 400 error.
var ErrStepOutOfRangeBadRequest = fiber.NewError(fiber.StatusBadRequest, "step outside the sale window")

// ErrZeroAmountBadRequest maps a zero trade amount to a 400 error.
var ErrZeroAmountBadRequest = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrExceedsSaleBadRequest maps a trade crossing the sale boundary to a 400
// error.
var ErrExceedsSaleBadRequest = fiber.NewError(fiber.StatusBadRequest, "trade exceeds the remaining sale window")

// ErrQuoteFailedInternal signals a generic server-side quoting error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// NewAmountRequired returns a 400 Bad Request for a missing amount field.
func NewAmountRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidAmount wraps an amount parsing error into a 400 Bad Request with
// a descriptive message.
func NewInvalidAmount(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}
