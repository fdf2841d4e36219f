package strategy

import "capsim-round/internal/model"

// Context is what a strategy knows when choosing a product's attributes.
type Context struct {
	Name            string
	Segment         model.SegmentProfile
	MarketingBudget float64
	Capacity        int
}

// Strategy turns a segment and fixed plant/marketing decisions into a full product input.
type Strategy interface {
	Name() string
	Decide(ctx Context) (model.ProductInput, error)
}

// New returns a strategy by name ("ideal" or "oracle").
func New(name string, params OracleParams) (Strategy, error) {
	switch name {
	case "ideal", "":
		return IdealStrategy{}, nil
	case "oracle":
		return NewOracleStrategy(params), nil
	default:
		return nil, &UnsupportedError{Name: name}
	}
}

type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return "unsupported strategy: " + e.Name
}
