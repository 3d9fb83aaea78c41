package bonding_curve

import (
	"errors"
	"math/big"
	"testing"
)

func TestSimulateMintsSingle(t *testing.T) {
	c := mustCurve(t)
	amount := big.NewInt(100_000)

	results, err := c.SimulateMints([]*big.Int{amount})
	if err != nil {
		t.Fatalf("SimulateMints() fail: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results: got %d want 1", len(results))
	}
	if results[0].StartStep.Sign() != 0 {
		t.Fatalf("start step: got %s want 0", results[0].StartStep)
	}

	direct, err := c.AssetOutGivenQuoteIn(big.NewInt(0), amount)
	if err != nil {
		t.Fatalf("AssetOutGivenQuoteIn() fail: %v", err)
	}
	if results[0].TokensOut.Cmp(direct) != 0 {
		t.Fatalf("simulated %s != direct %s", results[0].TokensOut, direct)
	}
}

func TestSimulateMintsAdvancesStep(t *testing.T) {
	c := mustCurve(t)

	results, err := c.SimulateMints([]*big.Int{big.NewInt(1_000_000), big.NewInt(2_000_000), big.NewInt(500_000)})
	if err != nil {
		t.Fatalf("SimulateMints() fail: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results: got %d want 3", len(results))
	}

	step := big.NewInt(0)
	for i, r := range results {
		if r.StartStep.Cmp(step) != 0 {
			t.Fatalf("mint %d: start step %s, want running step %s", i, r.StartStep, step)
		}
		step = new(big.Int).Add(step, r.TokensOut)
	}
}

func TestSimulateMintsOrderSensitive(t *testing.T) {
	// a high-valuation curve, where the sats reserve outscales the token
	// reserve and intermediate flooring is visible in the totals
	cfg := launchConfig()
	cfg.McTargetSats = big.NewInt(7_000_000_000_000)
	c, err := NewCurve(cfg)
	if err != nil {
		t.Fatalf("NewCurve() fail: %v", err)
	}

	a, b := big.NewInt(1_000_000), big.NewInt(123_456_789)

	ab, err := c.SimulateMints([]*big.Int{a, b})
	if err != nil {
		t.Fatalf("SimulateMints(a, b) fail: %v", err)
	}
	ba, err := c.SimulateMints([]*big.Int{b, a})
	if err != nil {
		t.Fatalf("SimulateMints(b, a) fail: %v", err)
	}

	sumAB := new(big.Int).Add(ab[0].TokensOut, ab[1].TokensOut)
	sumBA := new(big.Int).Add(ba[0].TokensOut, ba[1].TokensOut)
	if sumAB.Cmp(sumBA) == 0 {
		t.Fatalf("order-insensitive totals (%s): price impact is nonlinear, sums must differ", sumAB)
	}
}

func TestSimulateMintsAtomicFailure(t *testing.T) {
	c := mustCurve(t)

	// second mint blows past the sale window
	results, err := c.SimulateMints([]*big.Int{big.NewInt(1_000), big.NewInt(50_000_000)})
	if !errors.Is(err, ErrExceedsSale) {
		t.Fatalf("want ErrExceedsSale, got %v", err)
	}
	if results != nil {
		t.Fatalf("partial results returned on failure: %v", results)
	}

	// zero amount mid-sequence fails the whole simulation too
	results, err = c.SimulateMints([]*big.Int{big.NewInt(1_000), big.NewInt(0)})
	if !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("want ErrZeroAmount, got %v", err)
	}
	if results != nil {
		t.Fatalf("partial results returned on failure: %v", results)
	}
}

func TestSimulateMintsIndependentCalls(t *testing.T) {
	c := mustCurve(t)
	amount := big.NewInt(750_000)

	first, err := c.SimulateMints([]*big.Int{amount})
	if err != nil {
		t.Fatalf("first SimulateMints() fail: %v", err)
	}
	second, err := c.SimulateMints([]*big.Int{amount})
	if err != nil {
		t.Fatalf("second SimulateMints() fail: %v", err)
	}
	// every call starts from the sale's origin
	if first[0].TokensOut.Cmp(second[0].TokensOut) != 0 {
		t.Fatalf("simulations interfered: %s vs %s", first[0].TokensOut, second[0].TokensOut)
	}
}
