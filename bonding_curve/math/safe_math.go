package math

import (
	"errors"
	"math/big"
)

var (
	ErrOverflow       = errors.New("SafeMath: u128 overflow")
	ErrUnderflow      = errors.New("SafeMath: subtraction underflow")
	ErrDivisionByZero = errors.New("SafeMath: division by zero")
)

var one = big.NewInt(1)

// fitsU128 reports whether v is representable as an unsigned 128-bit integer.
func fitsU128(v *big.Int) bool {
	return v.Sign() >= 0 && v.BitLen() <= 128
}

func Add(a, b *big.Int) (*big.Int, error) {
	sum := new(big.Int).Add(a, b)
	if !fitsU128(sum) {
		return nil, ErrOverflow
	}
	return sum, nil
}

func Sub(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, ErrUnderflow
	}
	return new(big.Int).Sub(a, b), nil
}

func Mul(a, b *big.Int) (*big.Int, error) {
	prod := new(big.Int).Mul(a, b)
	if !fitsU128(prod) {
		return nil, ErrOverflow
	}
	return prod, nil
}

// Div is floor division. It is the rounding used when value flows out of the
// curve; never reuse it where the curve must be paid in full, that path is
// DivUp.
func Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).Div(a, b), nil
}

// DivUp is ceiling division, the rounding used when the buyer pays the curve.
// Kept as its own path rather than a flag on Div so the two swap directions
// cannot share a rounding mode by accident.
func DivUp(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	numerator := new(big.Int).Add(a, new(big.Int).Sub(b, one))
	return new(big.Int).Div(numerator, b), nil
}
