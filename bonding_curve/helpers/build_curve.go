package helpers

import (
	"fmt"
	"math/big"

	"github.com/tidwall/gjson"

	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
	"github.com/satlaunch/satcurve-go/u128"
)

// ParseLaunchConfig reads a launch document into a CurveConfig. Amounts may
// be JSON strings or integer literals; either way they are parsed as strict
// base-10 u128 so supply-scale values survive the boundary untouched.
//
//	{
//	  "total_supply": "1000000000",
//	  "sell_amount": "720000000",
//	  "vt": "250000000",
//	  "mc_target_sats": "70000000"
//	}
//
// With an optional "token_decimals" field the token amounts (total_supply,
// sell_amount, vt) are whole-token decimals scaled by 10^token_decimals into
// base units; mc_target_sats is always in sats. Anything below one base unit
// after scaling is truncated.
func ParseLaunchConfig(data []byte) (shared.CurveConfig, error) {
	decimals, err := tokenDecimalsAt(data)
	if err != nil {
		return shared.CurveConfig{}, err
	}

	cfg := shared.CurveConfig{}
	fields := []struct {
		path   string
		scaled bool
		dst    **big.Int
	}{
		{"total_supply", true, &cfg.TotalSupply},
		{"sell_amount", true, &cfg.SellAmount},
		{"vt", true, &cfg.VT},
		{"mc_target_sats", false, &cfg.McTargetSats},
	}
	for _, f := range fields {
		var v *big.Int
		var err error
		if f.scaled && decimals > 0 {
			v, err = scaledAmountAt(data, f.path, decimals)
		} else {
			v, err = amountAt(data, f.path)
		}
		if err != nil {
			return shared.CurveConfig{}, err
		}
		*f.dst = v
	}
	return cfg, nil
}

func tokenDecimalsAt(data []byte) (int32, error) {
	r := gjson.GetBytes(data, "token_decimals")
	if !r.Exists() {
		return 0, nil
	}
	d := r.Int()
	if r.Type != gjson.Number || float64(d) != r.Num || d < 0 || d > 18 {
		return 0, fmt.Errorf("launch config: token_decimals must be an integer in [0, 18], got %s", r.Raw)
	}
	return int32(d), nil
}

func amountAt(data []byte, path string) (*big.Int, error) {
	r := gjson.GetBytes(data, path)
	if !r.Exists() {
		return nil, fmt.Errorf("launch config: missing %s", path)
	}
	lit := r.String()
	if r.Type == gjson.Number {
		// Raw preserves the literal; r.Num is a float64 and would already
		// have lost precision at u128 scale.
		lit = r.Raw
	}
	v, err := u128.Parse(lit)
	if err != nil {
		return nil, fmt.Errorf("launch config: %s: %w", path, err)
	}
	return v, nil
}

func scaledAmountAt(data []byte, path string, decimals int32) (*big.Int, error) {
	r := gjson.GetBytes(data, path)
	if !r.Exists() {
		return nil, fmt.Errorf("launch config: missing %s", path)
	}
	lit := r.String()
	if r.Type == gjson.Number {
		lit = r.Raw
	}
	v, err := ConvertToBaseUnits(lit, decimals)
	if err != nil {
		return nil, fmt.Errorf("launch config: %s: %w", path, err)
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return nil, fmt.Errorf("launch config: %s: out of u128 range", path)
	}
	return v, nil
}
