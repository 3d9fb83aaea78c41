package helpers

import (
	"math/big"
	"testing"

	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
)

func TestLaunchConfigBinaryRoundTrip(t *testing.T) {
	hiLimb := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)) // 2^64 + 1
	in := shared.CurveConfig{
		TotalSupply:  hiLimb,
		SellAmount:   big.NewInt(720_000_000),
		VT:           big.NewInt(250_000_000),
		McTargetSats: big.NewInt(70_000_000),
	}

	data, err := EncodeLaunchConfig(in)
	if err != nil {
		t.Fatalf("EncodeLaunchConfig() fail: %v", err)
	}
	if len(data) != 64 {
		t.Fatalf("encoded length: got %d want 64", len(data))
	}

	out, err := ParseLaunchConfigBinary(data)
	if err != nil {
		t.Fatalf("ParseLaunchConfigBinary() fail: %v", err)
	}
	if out.TotalSupply.Cmp(in.TotalSupply) != 0 {
		t.Fatalf("total_supply: got %s want %s", out.TotalSupply, in.TotalSupply)
	}
	if out.SellAmount.Cmp(in.SellAmount) != 0 {
		t.Fatalf("sell_amount: got %s want %s", out.SellAmount, in.SellAmount)
	}
	if out.VT.Cmp(in.VT) != 0 {
		t.Fatalf("vt: got %s want %s", out.VT, in.VT)
	}
	if out.McTargetSats.Cmp(in.McTargetSats) != 0 {
		t.Fatalf("mc_target_sats: got %s want %s", out.McTargetSats, in.McTargetSats)
	}
}

func TestParseLaunchConfigBinaryTruncated(t *testing.T) {
	if _, err := ParseLaunchConfigBinary(make([]byte, 63)); err == nil {
		t.Fatalf("ParseLaunchConfigBinary() should fail on truncated data")
	}
}

func TestEncodeLaunchConfigRejectsBadAmounts(t *testing.T) {
	cfg := shared.CurveConfig{
		TotalSupply:  big.NewInt(1),
		SellAmount:   big.NewInt(1),
		VT:           nil,
		McTargetSats: big.NewInt(1),
	}
	if _, err := EncodeLaunchConfig(cfg); err == nil {
		t.Fatalf("EncodeLaunchConfig() should fail on a nil field")
	}

	cfg.VT = big.NewInt(-1)
	if _, err := EncodeLaunchConfig(cfg); err == nil {
		t.Fatalf("EncodeLaunchConfig() should fail on a negative field")
	}
}
