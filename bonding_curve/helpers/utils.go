package helpers

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
)

// ConvertToBaseUnits scales a human-readable token amount into atomic units.
func ConvertToBaseUnits(amount string, tokenDecimal int32) (*big.Int, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	value = value.Mul(decimal.New(1, tokenDecimal))
	return FromDecimalToBig(value), nil
}

func FromDecimalToBig(value decimal.Decimal) *big.Int {
	return value.Truncate(0).BigInt()
}

// PriceSatsPerToken renders the spot price X / Y of a snapshot as a decimal
// with the given number of fractional digits. Display-scale only; the engine
// itself never leaves integer arithmetic.
func PriceSatsPerToken(snap shared.CurveSnapshot, places int32) (decimal.Decimal, error) {
	if snap.X == nil || snap.Y == nil || snap.Y.Sign() == 0 {
		return decimal.Zero, errors.New("empty snapshot reserves")
	}
	num := decimal.NewFromBigInt(snap.X, 0)
	den := decimal.NewFromBigInt(snap.Y, 0)
	return num.DivRound(den, places), nil
}
