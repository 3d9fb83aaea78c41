package shared

import (
	"math/big"
)

const (
	// ProgressDenominator scales ProgressAtStep into a whole percentage.
	ProgressDenominator = 100
)

var (
	U64Max  = new(big.Int).SetUint64(^uint64(0))
	U128Max = bigIntFromString("340282366920938463463374607431768211455")
)

func bigIntFromString(v string) *big.Int {
	out, ok := new(big.Int).SetString(v, 10)
	if !ok {
		panic("invalid big integer literal")
	}
	return out
}

// CurveConfig is the launch parameter set a curve is built from. All amounts
// are atomic units in the unsigned 128-bit domain; decimal scaling is the
// caller's concern.
type CurveConfig struct {
	TotalSupply  *big.Int // total token supply that will ever exist
	SellAmount   *big.Int // tokens sold over the bonding curve
	VT           *big.Int // virtual token reserves, never sold
	McTargetSats *big.Int // target fully diluted valuation in sats at sell-out
}

// CurveSnapshot is the reserve state of the curve at a given step.
type CurveSnapshot struct {
	Step *big.Int // tokens sold along the curve so far
	X    *big.Int // sats-side conceptual reserves
	Y    *big.Int // token-side reserves (vt + remaining sellable)
}

// PriceNum returns the numerator of the spot price X / Y (sats per token
// base unit).
func (s CurveSnapshot) PriceNum() *big.Int {
	return s.X
}

// PriceDen returns the denominator of the spot price X / Y.
func (s CurveSnapshot) PriceDen() *big.Int {
	return s.Y
}

// MintResult is one entry of a sequential mint simulation: the step the
// purchase started from and the tokens it produced.
type MintResult struct {
	StartStep *big.Int
	TokensOut *big.Int
}
