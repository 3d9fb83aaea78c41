package service

import (
	"context"
	"math/big"

	"log/slog"

	"github.com/satlaunch/satcurve-go/bonding_curve"
	"github.com/satlaunch/satcurve-go/bonding_curve/helpers"
	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
)

// priceDisplayPlaces is the fractional precision of the spot price exposed on
// snapshots. Display-scale only; quoting never leaves integer arithmetic.
const priceDisplayPlaces = 12

// QuoteService answers pricing questions against a single immutable sale
// curve. The curve never changes after construction, so the service holds no
// locks and is safe for concurrent requests.
type QuoteService struct {
	BaseService
	curve *bonding_curve.Curve
}

// NewQuoteService constructs a QuoteService for the given curve.
func NewQuoteService(logger *slog.Logger, curve *bonding_curve.Curve) *QuoteService {
	return &QuoteService{
		BaseService: BaseService{logger: logger},
		curve:       curve,
	}
}

// SnapshotDetail is the reserve state at a step together with the derived
// per-step metrics.
type SnapshotDetail struct {
	Snapshot       shared.CurveSnapshot
	Progress       *big.Int
	CumulativeSats *big.Int
	Price          string
}

// CurveStats is the immutable constants plus the whole-sale aggregates.
type CurveStats struct {
	TotalSupply    *big.Int
	SellAmount     *big.Int
	VT             *big.Int
	Y0             *big.Int
	X0             *big.Int
	K              *big.Int
	TotalRaiseSats *big.Int
	FinalMcSats    *big.Int
}

// Snapshot projects the curve state at step and decorates it with progress
// and cumulative spend.
func (s *QuoteService) Snapshot(ctx context.Context, step *big.Int) (SnapshotDetail, error) {
	s.logger.Debug("projecting snapshot", "step", step)

	snap, err := s.curve.Snapshot(step)
	if err != nil {
		return SnapshotDetail{}, err
	}
	progress, err := s.curve.ProgressAtStep(step)
	if err != nil {
		return SnapshotDetail{}, err
	}
	cumulative, err := s.curve.CumulativeQuoteToStep(step)
	if err != nil {
		return SnapshotDetail{}, err
	}
	price, err := helpers.PriceSatsPerToken(snap, priceDisplayPlaces)
	if err != nil {
		return SnapshotDetail{}, err
	}
	return SnapshotDetail{
		Snapshot:       snap,
		Progress:       progress,
		CumulativeSats: cumulative,
		Price:          price.String(),
	}, nil
}

// Mint quotes the tokens bought by paying satsIn at step.
func (s *QuoteService) Mint(ctx context.Context, step, satsIn *big.Int) (*big.Int, error) {
	s.logger.Debug("quoting mint", "step", step, "sats_in", satsIn)

	tokensOut, err := s.curve.AssetOutGivenQuoteIn(step, satsIn)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("mint quoted", "tokens_out", tokensOut)
	return tokensOut, nil
}

// Cost quotes the sats required to buy exactly tokensOut at step.
func (s *QuoteService) Cost(ctx context.Context, step, tokensOut *big.Int) (*big.Int, error) {
	s.logger.Debug("quoting cost", "step", step, "tokens_out", tokensOut)

	satsIn, err := s.curve.QuoteInGivenAssetOut(step, tokensOut)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("cost quoted", "sats_in", satsIn)
	return satsIn, nil
}

// Stats returns the curve constants and whole-sale aggregates.
func (s *QuoteService) Stats(ctx context.Context) (CurveStats, error) {
	raise, err := s.curve.TotalRaiseSats()
	if err != nil {
		return CurveStats{}, err
	}
	finalMc, err := s.curve.FinalMcSats()
	if err != nil {
		return CurveStats{}, err
	}
	return CurveStats{
		TotalSupply:    s.curve.TotalSupply(),
		SellAmount:     s.curve.SellAmount(),
		VT:             s.curve.VT(),
		Y0:             s.curve.Y0(),
		X0:             s.curve.X0(),
		K:              s.curve.K(),
		TotalRaiseSats: raise,
		FinalMcSats:    finalMc,
	}, nil
}

// Simulate replays a purchase sequence from the sale's origin.
func (s *QuoteService) Simulate(ctx context.Context, satsInAmounts []*big.Int) ([]shared.MintResult, error) {
	s.logger.Debug("simulating mints", "count", len(satsInAmounts))

	results, err := s.curve.SimulateMints(satsInAmounts)
	if err != nil {
		return nil, err
	}
	return results, nil
}
