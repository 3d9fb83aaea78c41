package math

import (
	"errors"
	"math/big"
	"testing"
)

var u128Max, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

func TestAddOverflow(t *testing.T) {
	got, err := Add(big.NewInt(2), big.NewInt(3))
	if err != nil || got.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("Add(2, 3) = %s, %v", got, err)
	}
	if _, err := Add(u128Max, big.NewInt(1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("want ErrOverflow, got %v", err)
	}
	// the boundary itself is fine
	if got, err := Add(u128Max, big.NewInt(0)); err != nil || got.Cmp(u128Max) != 0 {
		t.Fatalf("Add(max, 0) = %s, %v", got, err)
	}
}

func TestSubUnderflow(t *testing.T) {
	got, err := Sub(big.NewInt(5), big.NewInt(3))
	if err != nil || got.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("Sub(5, 3) = %s, %v", got, err)
	}
	if _, err := Sub(big.NewInt(3), big.NewInt(5)); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("want ErrUnderflow, got %v", err)
	}
}

func TestMulOverflow(t *testing.T) {
	got, err := Mul(big.NewInt(1_000_000), big.NewInt(1_000_000))
	if err != nil || got.Cmp(big.NewInt(1_000_000_000_000)) != 0 {
		t.Fatalf("Mul = %s, %v", got, err)
	}
	if _, err := Mul(u128Max, big.NewInt(2)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("want ErrOverflow, got %v", err)
	}
}

func TestDivFloorAndCeil(t *testing.T) {
	cases := []struct {
		a, b, floor, ceil int64
	}{
		{10, 3, 3, 4},
		{9, 3, 3, 3},
		{1, 2, 0, 1},
		{0, 7, 0, 0},
	}
	for _, tc := range cases {
		down, err := Div(big.NewInt(tc.a), big.NewInt(tc.b))
		if err != nil || down.Cmp(big.NewInt(tc.floor)) != 0 {
			t.Fatalf("Div(%d, %d) = %s, %v; want %d", tc.a, tc.b, down, err, tc.floor)
		}
		up, err := DivUp(big.NewInt(tc.a), big.NewInt(tc.b))
		if err != nil || up.Cmp(big.NewInt(tc.ceil)) != 0 {
			t.Fatalf("DivUp(%d, %d) = %s, %v; want %d", tc.a, tc.b, up, err, tc.ceil)
		}
	}

	if _, err := Div(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("want ErrDivisionByZero, got %v", err)
	}
	if _, err := DivUp(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("want ErrDivisionByZero, got %v", err)
	}
}
