package strategy

import "capsim-round/internal/model"

// IdealStrategy builds exactly what the segment asks for: midpoint price,
// ideal performance and size. Satisfaction is always 1.
type IdealStrategy struct{}

func (IdealStrategy) Name() string { return "ideal" }

func (IdealStrategy) Decide(ctx Context) (model.ProductInput, error) {
	return model.ProductInput{
		Name:            ctx.Name,
		Segment:         ctx.Segment.Name,
		Price:           ctx.Segment.IdealPrice.Mid(),
		Performance:     ctx.Segment.IdealPerformance,
		Size:            ctx.Segment.IdealSize,
		MarketingBudget: ctx.MarketingBudget,
		Capacity:        ctx.Capacity,
	}, nil
}
