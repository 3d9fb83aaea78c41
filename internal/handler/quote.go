package handler

import (
	"context"
	"errors"
	"math/big"

	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/tidwall/gjson"

	"github.com/satlaunch/satcurve-go/bonding_curve"
	"github.com/satlaunch/satcurve-go/internal/service"
	"github.com/satlaunch/satcurve-go/u128"
)

type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

// All amounts travel as base-10 strings; JSON numbers would go through
// float64 and corrupt u128-scale values.
type SnapshotResponse struct {
	Step           string `json:"step"`
	X              string `json:"x"`
	Y              string `json:"y"`
	Price          string `json:"price"`
	ProgressPct    string `json:"progress_pct"`
	CumulativeSats string `json:"cumulative_sats"`
}

type CurveResponse struct {
	TotalSupply    string `json:"total_supply"`
	SellAmount     string `json:"sell_amount"`
	VT             string `json:"vt"`
	Y0             string `json:"y0"`
	X0             string `json:"x0"`
	K              string `json:"k"`
	TotalRaiseSats string `json:"total_raise_sats"`
	FinalMcSats    string `json:"final_mc_sats"`
}

type MintResponse struct {
	TokensOut string `json:"tokens_out"`
}

type CostResponse struct {
	SatsIn string `json:"sats_in"`
}

type SimulatedMint struct {
	StartStep string `json:"start_step"`
	TokensOut string `json:"tokens_out"`
}

func (h *QuoteHandler) Snapshot() fiber.Handler {
	return func(c fiber.Ctx) error {
		step, err := h.parseAmount(c, "step")
		if err != nil {
			return err
		}

		detail, err := h.service.Snapshot(context.Background(), step)
		if err != nil {
			return h.handleServiceError(err)
		}

		return c.JSON(SnapshotResponse{
			Step:           detail.Snapshot.Step.String(),
			X:              detail.Snapshot.X.String(),
			Y:              detail.Snapshot.Y.String(),
			Price:          detail.Price,
			ProgressPct:    detail.Progress.String(),
			CumulativeSats: detail.CumulativeSats.String(),
		})
	}
}

func (h *QuoteHandler) Mint() fiber.Handler {
	return func(c fiber.Ctx) error {
		step, err := h.parseAmount(c, "step")
		if err != nil {
			return err
		}
		satsIn, err := h.parseAmount(c, "sats_in")
		if err != nil {
			return err
		}

		tokensOut, err := h.service.Mint(context.Background(), step, satsIn)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("mint handled", "step", step, "sats_in", satsIn, "tokens_out", tokensOut)
		return c.JSON(MintResponse{TokensOut: tokensOut.String()})
	}
}

func (h *QuoteHandler) Cost() fiber.Handler {
	return func(c fiber.Ctx) error {
		step, err := h.parseAmount(c, "step")
		if err != nil {
			return err
		}
		tokensOut, err := h.parseAmount(c, "tokens_out")
		if err != nil {
			return err
		}

		satsIn, err := h.service.Cost(context.Background(), step, tokensOut)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("cost handled", "step", step, "tokens_out", tokensOut, "sats_in", satsIn)
		return c.JSON(CostResponse{SatsIn: satsIn.String()})
	}
}

func (h *QuoteHandler) Curve() fiber.Handler {
	return func(c fiber.Ctx) error {
		stats, err := h.service.Stats(context.Background())
		if err != nil {
			return h.handleServiceError(err)
		}

		return c.JSON(CurveResponse{
			TotalSupply:    stats.TotalSupply.String(),
			SellAmount:     stats.SellAmount.String(),
			VT:             stats.VT.String(),
			Y0:             stats.Y0.String(),
			X0:             stats.X0.String(),
			K:              stats.K.String(),
			TotalRaiseSats: stats.TotalRaiseSats.String(),
			FinalMcSats:    stats.FinalMcSats.String(),
		})
	}
}

func (h *QuoteHandler) Simulate() fiber.Handler {
	return func(c fiber.Ctx) error {
		amounts, err := h.parseSimulateBody(c.Body())
		if err != nil {
			return err
		}

		results, err := h.service.Simulate(context.Background(), amounts)
		if err != nil {
			return h.handleServiceError(err)
		}

		out := make([]SimulatedMint, 0, len(results))
		for _, r := range results {
			out = append(out, SimulatedMint{
				StartStep: r.StartStep.String(),
				TokensOut: r.TokensOut.String(),
			})
		}
		return c.JSON(out)
	}
}

func (h *QuoteHandler) parseAmount(c fiber.Ctx, field string) (*big.Int, error) {
	raw := c.Query(field)
	if raw == "" {
		return nil, NewAmountRequired(field)
	}
	v, err := u128.Parse(raw)
	if err != nil {
		return nil, NewInvalidAmount(field, err)
	}
	return v, nil
}

func (h *QuoteHandler) parseSimulateBody(body []byte) ([]*big.Int, error) {
	arr := gjson.GetBytes(body, "sats_in")
	if !arr.Exists() || !arr.IsArray() {
		return nil, ErrInvalidSimulateBody
	}

	items := arr.Array()
	amounts := make([]*big.Int, 0, len(items))
	for _, item := range items {
		lit := item.String()
		if item.Type == gjson.Number {
			lit = item.Raw
		}
		v, err := u128.Parse(lit)
		if err != nil {
			return nil, NewInvalidAmount("sats_in", err)
		}
		amounts = append(amounts, v)
	}
	return amounts, nil
}

func (h *QuoteHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, bonding_curve.ErrStepOutOfRange):
		return ErrStepOutOfRangeBadRequest
	case errors.Is(err, bonding_curve.ErrZeroAmount):
		return ErrZeroAmountBadRequest
	case errors.Is(err, bonding_curve.ErrExceedsSale):
		return ErrExceedsSaleBadRequest
	default:
		h.logger.Error("service quote failed", "err", err)
		return ErrQuoteFailedInternal
	}
}
