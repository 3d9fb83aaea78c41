package math

import (
	"math/big"
)

// GetQuoteReserveFromAssetReserve returns X = floor(k / y), the sats-side
// reserve implied by the invariant at token-side reserve y.
func GetQuoteReserveFromAssetReserve(k, y *big.Int) (*big.Int, error) {
	return Div(k, y)
}

// GetDeltaAssetFromQuoteIn computes the token output of paying quoteIn sats
// into reserves (x, y) on invariant k.
//
//	x' = x + quoteIn
//	y' = floor(k / x')
//	dy = y - y'
//
// The floor on y' rounds the token output down, in the curve's favor.
func GetDeltaAssetFromQuoteIn(k, x, y, quoteIn *big.Int) (*big.Int, error) {
	xNext, err := Add(x, quoteIn)
	if err != nil {
		return nil, err
	}
	yNext, err := Div(k, xNext)
	if err != nil {
		return nil, err
	}
	return Sub(y, yNext)
}

// GetDeltaQuoteFromAssetOut computes the sats a buyer must pay to extract
// exactly assetOut tokens from reserves (x, y) on invariant k.
//
//	y' = y - assetOut
//	x' = ceil(k / y')
//	dx = x' - x
//
// The ceiling on x' rounds the payment up: the buyer pays at least enough,
// the opposite rounding direction from GetDeltaAssetFromQuoteIn.
func GetDeltaQuoteFromAssetOut(k, x, y, assetOut *big.Int) (*big.Int, error) {
	yNext, err := Sub(y, assetOut)
	if err != nil {
		return nil, err
	}
	xNext, err := DivUp(k, yNext)
	if err != nil {
		return nil, err
	}
	return Sub(xNext, x)
}
