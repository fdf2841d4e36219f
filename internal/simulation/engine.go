package simulation

import (
	"errors"
	"fmt"
	"math"

	"capsim-round/internal/market"
	"capsim-round/internal/model"
)

const (
	// MaxDemandShare is the share of a segment a perfectly satisfying product wins.
	MaxDemandShare = 0.3
	// COGSRatio is cost of goods sold as a fraction of revenue.
	COGSRatio = 0.6
)

type Engine struct {
	catalog *market.Catalog
}

// New returns an engine over catalog, or over market.Default() when catalog is nil.
func New(catalog *market.Catalog) *Engine {
	if catalog == nil {
		catalog = market.Default()
	}
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() *market.Catalog { return e.catalog }

// SimulateRound computes one product's outcome for a single round.
// The only failure is an unknown segment; no partial result is returned.
func (e *Engine) SimulateRound(in model.ProductInput) (*model.RoundResult, error) {
	seg, err := e.catalog.Lookup(in.Segment)
	if err != nil {
		return nil, err
	}

	scores := Score(in, seg)
	demandShare := scores.Satisfaction * MaxDemandShare
	potential := int(math.Floor(float64(seg.MarketSize) * demandShare))

	units := potential
	if in.Capacity < units {
		units = in.Capacity
	}
	if units < 0 {
		units = 0
	}

	revenue := float64(units) * in.Price
	cogs := revenue * COGSRatio
	cm := revenue - cogs
	profit := cm - in.MarketingBudget

	return &model.RoundResult{
		Product: in.Name,
		Segment: seg.Name,

		Scores:         scores,
		DemandShare:    demandShare,
		PotentialSales: potential,

		UnitsSold:          units,
		Revenue:            revenue,
		COGS:               cogs,
		ContributionMargin: cm,
		NetProfit:          profit,
		InventoryRemaining: in.Capacity - units,
		MarketSharePercent: float64(units) / float64(seg.MarketSize) * 100,

		Outcome: model.OutcomeFromNetProfit(profit),
	}, nil
}

// Round is the outcome of simulating several products side by side.
type Round struct {
	Results        []model.RoundResult
	TotalRevenue   float64
	TotalNetProfit float64
}

// SimulateRounds simulates each product independently. Products in the same
// segment do not compete; each sees the whole segment.
func (e *Engine) SimulateRounds(inputs []model.ProductInput) (*Round, error) {
	if len(inputs) == 0 {
		return nil, errors.New("no products")
	}
	out := &Round{Results: make([]model.RoundResult, 0, len(inputs))}
	for idx, in := range inputs {
		res, err := e.SimulateRound(in)
		if err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", idx, in.Name, err)
		}
		out.Results = append(out.Results, *res)
		out.TotalRevenue += res.Revenue
		out.TotalNetProfit += res.NetProfit
	}
	return out, nil
}
