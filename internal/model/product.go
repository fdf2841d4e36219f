package model

// ProductInput is one product's decisions for a single round.
//
// The engine trusts these values; range checks belong to whoever collected them
// (config.Validate, API request binding).
type ProductInput struct {
	// Name is a display label only ("Product A").
	Name    string
	Segment string

	Price           float64
	Performance     float64
	Size            float64
	MarketingBudget float64

	// Capacity is the hard ceiling on units that can be sold this round.
	Capacity int
}
