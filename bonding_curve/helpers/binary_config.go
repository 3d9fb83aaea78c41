package helpers

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
	"github.com/satlaunch/satcurve-go/u128"
)

// launchConfigRecord is the borsh wire layout of a launch config: four
// little-endian u128 fields, 64 bytes total.
type launchConfigRecord struct {
	TotalSupply  binary.Uint128
	SellAmount   binary.Uint128
	VT           binary.Uint128
	McTargetSats binary.Uint128
}

// ParseLaunchConfigBinary reads a borsh-encoded launch document into a
// CurveConfig. The compact form carries the exact u128 limbs, so there is no
// string parsing and no precision question at all.
func ParseLaunchConfigBinary(data []byte) (shared.CurveConfig, error) {
	var rec launchConfigRecord
	if err := binary.NewBorshDecoder(data).Decode(&rec); err != nil {
		return shared.CurveConfig{}, fmt.Errorf("launch config: %w", err)
	}
	return shared.CurveConfig{
		TotalSupply:  u128.ToBig(rec.TotalSupply),
		SellAmount:   u128.ToBig(rec.SellAmount),
		VT:           u128.ToBig(rec.VT),
		McTargetSats: u128.ToBig(rec.McTargetSats),
	}, nil
}

// EncodeLaunchConfig writes a CurveConfig in the borsh form that
// ParseLaunchConfigBinary reads.
func EncodeLaunchConfig(cfg shared.CurveConfig) ([]byte, error) {
	var rec launchConfigRecord
	var err error
	if rec.TotalSupply, err = u128.FromBig(cfg.TotalSupply); err != nil {
		return nil, fmt.Errorf("launch config: total_supply: %w", err)
	}
	if rec.SellAmount, err = u128.FromBig(cfg.SellAmount); err != nil {
		return nil, fmt.Errorf("launch config: sell_amount: %w", err)
	}
	if rec.VT, err = u128.FromBig(cfg.VT); err != nil {
		return nil, fmt.Errorf("launch config: vt: %w", err)
	}
	if rec.McTargetSats, err = u128.FromBig(cfg.McTargetSats); err != nil {
		return nil, fmt.Errorf("launch config: mc_target_sats: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := binary.NewBorshEncoder(buf).Encode(rec); err != nil {
		return nil, fmt.Errorf("launch config: %w", err)
	}
	return buf.Bytes(), nil
}
