package model

// Scores is the satisfaction breakdown for one product against one segment.
// Every field is in [0,1].
type Scores struct {
	Price        float64
	Performance  float64
	Size         float64
	Satisfaction float64
}

// RoundResult captures what happened to one product in one round.
type RoundResult struct {
	Product string
	Segment string

	Scores         Scores
	DemandShare    float64 // fraction of MarketSize the product could capture
	PotentialSales int     // demand before the capacity cap

	UnitsSold          int
	Revenue            float64
	COGS               float64
	ContributionMargin float64
	NetProfit          float64 // may be negative
	InventoryRemaining int
	MarketSharePercent float64

	Outcome Outcome
}
