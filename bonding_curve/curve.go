// Package bonding_curve prices a fixed-supply token sale over a
// constant-product curve with virtual token reserves.
package bonding_curve

import (
	"errors"
	"fmt"
	"math/big"

	curvemath "github.com/satlaunch/satcurve-go/bonding_curve/math"
	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
)

// Curve is a CPMM sale curve with virtual token reserves.
//
// Invariant: X * Y = k, where X is the sats-side (conceptual) reserve and
// Y = vt + (sellAmount - step) the token-side reserve. X0 is solved from the
// desired final fully diluted valuation:
//
//	mcTargetSats ≈ (X0 * Y0 / vt²) * totalSupply
//	X0 = mcTargetSats * vt² / (Y0 * totalSupply)
//
// Every field is set once in NewCurve and never written again; accessors
// return copies, so a Curve is safe for unlimited concurrent use.
type Curve struct {
	totalSupply *big.Int
	sellAmount  *big.Int
	vt          *big.Int

	y0 *big.Int // Y0 = vt + sellAmount
	x0 *big.Int // X0, conceptual sats-side reserve at step 0
	k  *big.Int // invariant: k = X0 * Y0
}

// NewCurve validates the launch parameters and derives the immutable curve
// constants. All arithmetic is checked against the u128 domain; an overflow
// is a config error, never a silent truncation.
func NewCurve(cfg shared.CurveConfig) (*Curve, error) {
	if err := validateAmount("total_supply", cfg.TotalSupply); err != nil {
		return nil, err
	}
	if err := validateAmount("sell_amount", cfg.SellAmount); err != nil {
		return nil, err
	}
	if err := validateAmount("vt", cfg.VT); err != nil {
		return nil, err
	}
	if err := validateAmount("mc_target_sats", cfg.McTargetSats); err != nil {
		return nil, err
	}
	if cfg.SellAmount.Cmp(cfg.TotalSupply) > 0 {
		return nil, fmt.Errorf("%w: sell_amount exceeds total_supply", ErrInvalidConfig)
	}

	y0, err := curvemath.Add(cfg.VT, cfg.SellAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: vt + sell_amount: %w", ErrInvalidConfig, err)
	}

	// X0 = mc_target_sats * vt² / (Y0 * total_supply)
	vtSq, err := curvemath.Mul(cfg.VT, cfg.VT)
	if err != nil {
		return nil, fmt.Errorf("%w: vt²: %w", ErrInvalidConfig, err)
	}
	numerator, err := curvemath.Mul(cfg.McTargetSats, vtSq)
	if err != nil {
		return nil, fmt.Errorf("%w: mc_target_sats * vt²: %w", ErrInvalidConfig, err)
	}
	denominator, err := curvemath.Mul(y0, cfg.TotalSupply)
	if err != nil {
		return nil, fmt.Errorf("%w: y0 * total_supply: %w", ErrInvalidConfig, err)
	}
	x0, err := curvemath.Div(numerator, denominator)
	if err != nil {
		return nil, fmt.Errorf("%w: solving x0: %w", ErrInvalidConfig, err)
	}
	if x0.Sign() == 0 {
		return nil, fmt.Errorf("%w: mc_target_sats too small for supply, x0 is zero", ErrInvalidConfig)
	}

	k, err := curvemath.Mul(x0, y0)
	if err != nil {
		return nil, fmt.Errorf("%w: x0 * y0: %w", ErrInvalidConfig, err)
	}

	return &Curve{
		totalSupply: new(big.Int).Set(cfg.TotalSupply),
		sellAmount:  new(big.Int).Set(cfg.SellAmount),
		vt:          new(big.Int).Set(cfg.VT),
		y0:          y0,
		x0:          x0,
		k:           k,
	}, nil
}

func validateAmount(name string, v *big.Int) error {
	if v == nil || v.Sign() <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidConfig, name)
	}
	if v.Cmp(shared.U128Max) > 0 {
		return fmt.Errorf("%w: %s overflows u128", ErrInvalidConfig, name)
	}
	return nil
}

// TotalSupply returns the total token supply.
func (c *Curve) TotalSupply() *big.Int { return new(big.Int).Set(c.totalSupply) }

// SellAmount returns the token amount sold over the curve.
func (c *Curve) SellAmount() *big.Int { return new(big.Int).Set(c.sellAmount) }

// VT returns the virtual token reserve.
func (c *Curve) VT() *big.Int { return new(big.Int).Set(c.vt) }

// Y0 returns the initial token-side reserve vt + sellAmount.
func (c *Curve) Y0() *big.Int { return new(big.Int).Set(c.y0) }

// X0 returns the initial sats-side reserve.
func (c *Curve) X0() *big.Int { return new(big.Int).Set(c.x0) }

// K returns the constant-product invariant.
func (c *Curve) K() *big.Int { return new(big.Int).Set(c.k) }

// MaxStep returns the last valid step, i.e. sellAmount.
func (c *Curve) MaxStep() *big.Int { return new(big.Int).Set(c.sellAmount) }

// assetReserveAt returns Y(step) = Y0 - step = vt + (sellAmount - step).
// Exact subtraction; Y(sellAmount) is vt exactly.
func (c *Curve) assetReserveAt(step *big.Int) (*big.Int, error) {
	if step == nil || step.Sign() < 0 || step.Cmp(c.sellAmount) > 0 {
		return nil, fmt.Errorf("%w: step %s not in [0, %s]", ErrStepOutOfRange, step, c.sellAmount)
	}
	return new(big.Int).Sub(c.y0, step), nil
}

// Snapshot returns the reserve state (X, Y) at a given step. X is floor(k/Y),
// monotonically non-decreasing in step; Snapshot(0).X equals X0 exactly.
func (c *Curve) Snapshot(step *big.Int) (shared.CurveSnapshot, error) {
	y, err := c.assetReserveAt(step)
	if err != nil {
		return shared.CurveSnapshot{}, err
	}
	x, err := curvemath.GetQuoteReserveFromAssetReserve(c.k, y)
	if err != nil {
		return shared.CurveSnapshot{}, err
	}
	return shared.CurveSnapshot{
		Step: new(big.Int).Set(step),
		X:    x,
		Y:    y,
	}, nil
}

// AssetOutGivenQuoteIn quotes the tokens bought by paying quoteIn sats
// against the reserve state at step. The curve is not advanced; chaining
// trades is the caller's job (see SimulateMints).
func (c *Curve) AssetOutGivenQuoteIn(step, quoteIn *big.Int) (*big.Int, error) {
	if quoteIn == nil || quoteIn.Sign() <= 0 {
		return nil, fmt.Errorf("%w: sats_in", ErrZeroAmount)
	}
	snap, err := c.Snapshot(step)
	if err != nil {
		return nil, err
	}
	tokensOut, err := curvemath.GetDeltaAssetFromQuoteIn(c.k, snap.X, snap.Y, quoteIn)
	if err != nil {
		// X + total raise = floor(k / vt) always fits u128, so a pay-in
		// that overflows the sats reserve has crossed the sale window.
		if errors.Is(err, curvemath.ErrOverflow) {
			return nil, fmt.Errorf("%w: %s sats in would pass the total raise", ErrExceedsSale, quoteIn)
		}
		return nil, fmt.Errorf("mint at step %s: %w", step, err)
	}
	nextStep := new(big.Int).Add(step, tokensOut)
	if nextStep.Cmp(c.sellAmount) > 0 {
		return nil, fmt.Errorf("%w: %s tokens out would pass step %s", ErrExceedsSale, tokensOut, c.sellAmount)
	}
	return tokensOut, nil
}

// QuoteInGivenAssetOut quotes the sats required to buy exactly assetOut
// tokens at step. Payment rounds up so the curve is never underpaid.
func (c *Curve) QuoteInGivenAssetOut(step, assetOut *big.Int) (*big.Int, error) {
	if assetOut == nil || assetOut.Sign() <= 0 {
		return nil, fmt.Errorf("%w: tokens_out", ErrZeroAmount)
	}
	snap, err := c.Snapshot(step)
	if err != nil {
		return nil, err
	}
	if assetOut.Cmp(snap.Y) >= 0 {
		return nil, fmt.Errorf("%w: %s tokens out would drain the reserve %s", ErrExceedsSale, assetOut, snap.Y)
	}
	nextStep := new(big.Int).Add(step, assetOut)
	if nextStep.Cmp(c.sellAmount) > 0 {
		return nil, fmt.Errorf("%w: %s tokens out would pass step %s", ErrExceedsSale, assetOut, c.sellAmount)
	}
	quoteIn, err := curvemath.GetDeltaQuoteFromAssetOut(c.k, snap.X, snap.Y, assetOut)
	if err != nil {
		return nil, fmt.Errorf("cost at step %s: %w", step, err)
	}
	return quoteIn, nil
}

// TotalRaiseSats returns the sats raised selling the full window
// [0, sellAmount]: X(sellAmount) - X0, with X(sellAmount) = floor(k / vt).
func (c *Curve) TotalRaiseSats() (*big.Int, error) {
	xFinal, err := curvemath.Div(c.k, c.vt)
	if err != nil {
		return nil, err
	}
	return curvemath.Sub(xFinal, c.x0)
}

// FinalMcSats returns the realized fully diluted valuation at sell-out,
// (k / vt²) * totalSupply. Floor division while solving X0 means this can
// drift below the configured mc_target_sats; callers get the realized value,
// not the target.
func (c *Curve) FinalMcSats() (*big.Int, error) {
	vtSq, err := curvemath.Mul(c.vt, c.vt)
	if err != nil {
		return nil, err
	}
	pFinal, err := curvemath.Div(c.k, vtSq)
	if err != nil {
		return nil, err
	}
	return curvemath.Mul(pFinal, c.totalSupply)
}

// ProgressAtStep returns the sale progress at step as a whole percentage of
// the total token supply.
func (c *Curve) ProgressAtStep(step *big.Int) (*big.Int, error) {
	if _, err := c.assetReserveAt(step); err != nil {
		return nil, err
	}
	scaled, err := curvemath.Mul(step, big.NewInt(shared.ProgressDenominator))
	if err != nil {
		return nil, err
	}
	return curvemath.Div(scaled, c.totalSupply)
}

// CumulativeQuoteToStep returns the total sats spent walking the curve from
// step 0 to step: X(step) - X0. At step sellAmount it equals TotalRaiseSats.
func (c *Curve) CumulativeQuoteToStep(step *big.Int) (*big.Int, error) {
	snap, err := c.Snapshot(step)
	if err != nil {
		return nil, err
	}
	return curvemath.Sub(snap.X, c.x0)
}
