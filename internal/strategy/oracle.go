package strategy

import (
	"fmt"

	"capsim-round/internal/market"
	"capsim-round/internal/model"
	"capsim-round/internal/simulation"
)

// OracleStrategy is a profit-maximizing price search.
// Performance and size stay at the segment ideal; price is swept over a
// discretized grid of the segment's ideal price band and the most profitable
// point wins.
//
// Notes:
// - Prices outside the band are not searched. The scoring keeps half of the
//   satisfaction from performance and size there, so an unbounded search would
//   always run to the highest price.
// - With idle capacity the midpoint is best; when capacity binds the top of the band is.
// - Ties keep the lowest price.
type OracleStrategy struct {
	params OracleParams
}

type OracleParams struct {
	// PriceSteps controls price discretization across the ideal band.
	// Higher = more accurate, slower.
	PriceSteps int
}

func NewOracleStrategy(params OracleParams) *OracleStrategy {
	if params.PriceSteps <= 0 {
		params.PriceSteps = 400
	}
	return &OracleStrategy{params: params}
}

func (s *OracleStrategy) Name() string { return "oracle" }

func (s *OracleStrategy) Decide(ctx Context) (model.ProductInput, error) {
	// Search against a one-segment market so the result does not depend on the
	// caller's catalog.
	cat, err := market.NewCatalog(ctx.Segment)
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("oracle: %w", err)
	}
	engine := simulation.New(cat)

	best, err := IdealStrategy{}.Decide(ctx)
	if err != nil {
		return model.ProductInput{}, err
	}

	band := ctx.Segment.IdealPrice
	steps := s.params.PriceSteps
	if band.Max == band.Min {
		steps = 0
	}
	step := 0.0
	if steps > 0 {
		step = (band.Max - band.Min) / float64(steps)
	}

	bestProfit := 0.0
	for i := 0; i <= steps; i++ {
		cand := best
		cand.Price = band.Min + float64(i)*step
		res, err := engine.SimulateRound(cand)
		if err != nil {
			return model.ProductInput{}, fmt.Errorf("oracle: price %.2f: %w", cand.Price, err)
		}
		if i == 0 || res.NetProfit > bestProfit {
			best.Price = cand.Price
			bestProfit = res.NetProfit
		}
	}
	return best, nil
}
