package bonding_curve

import (
	"fmt"
	"math/big"

	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
)

// SimulateMints replays a sequence of purchases from the sale's origin. Each
// purchase is quoted at the step produced by the previous one, so the result
// is order-sensitive. The running step is local to the call; concurrent
// simulations on the same curve do not interfere.
//
// If any purchase would cross the sale boundary the whole simulation fails
// and no partial results are returned.
func (c *Curve) SimulateMints(quoteInAmounts []*big.Int) ([]shared.MintResult, error) {
	step := big.NewInt(0)
	results := make([]shared.MintResult, 0, len(quoteInAmounts))

	for i, quoteIn := range quoteInAmounts {
		tokensOut, err := c.AssetOutGivenQuoteIn(step, quoteIn)
		if err != nil {
			return nil, fmt.Errorf("mint %d: %w", i, err)
		}
		results = append(results, shared.MintResult{
			StartStep: new(big.Int).Set(step),
			TokensOut: tokensOut,
		})
		step = new(big.Int).Add(step, tokensOut)
	}

	return results, nil
}
