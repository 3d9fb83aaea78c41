package helpers

import (
	"math/big"
	"testing"

	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
)

func TestConvertToBaseUnits(t *testing.T) {
	cases := []struct {
		amount  string
		decimal int32
		want    string
	}{
		{"1", 8, "100000000"},
		{"0.5", 8, "50000000"},
		{"21000000", 8, "2100000000000000"},
		{"0.000000001", 8, "0"}, // below one atomic unit truncates
	}
	for _, tc := range cases {
		got, err := ConvertToBaseUnits(tc.amount, tc.decimal)
		if err != nil {
			t.Fatalf("ConvertToBaseUnits(%q, %d) fail: %v", tc.amount, tc.decimal, err)
		}
		want, _ := new(big.Int).SetString(tc.want, 10)
		if got.Cmp(want) != 0 {
			t.Fatalf("ConvertToBaseUnits(%q, %d) = %s, want %s", tc.amount, tc.decimal, got, want)
		}
	}

	if _, err := ConvertToBaseUnits("not a number", 8); err == nil {
		t.Fatalf("ConvertToBaseUnits should reject garbage")
	}
}

func TestPriceSatsPerToken(t *testing.T) {
	snap := shared.CurveSnapshot{
		Step: big.NewInt(0),
		X:    big.NewInt(4_510_309),
		Y:    big.NewInt(970_000_000),
	}
	price, err := PriceSatsPerToken(snap, 12)
	if err != nil {
		t.Fatalf("PriceSatsPerToken() fail: %v", err)
	}
	if price.String() != "0.004649803093" {
		t.Fatalf("price: got %s", price)
	}

	if _, err := PriceSatsPerToken(shared.CurveSnapshot{}, 6); err == nil {
		t.Fatalf("empty snapshot should fail")
	}
}
