package bonding_curve

import "errors"

var (
	// ErrInvalidConfig is returned by NewCurve for zero or infeasible launch
	// parameters, including overflow while deriving the curve constants.
	ErrInvalidConfig = errors.New("invalid curve config")

	// ErrStepOutOfRange is returned when a step lies outside [0, sellAmount].
	ErrStepOutOfRange = errors.New("step outside sale window")

	// ErrZeroAmount is returned for a zero (or negative) trade amount; a
	// degenerate trade is the caller's bug, not a zero-output success.
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrExceedsSale is returned when a trade would cross the sale window
	// boundary or drain the virtual reserve, including pay-in amounts large
	// enough to overflow the sats-side reserve.
	ErrExceedsSale = errors.New("trade exceeds remaining sale window")
)
