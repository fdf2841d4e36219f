package models

import (
	"time"

	"capsim-round/internal/report"
)

// RoundResponse represents the response from a simulated round
type RoundResponse struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Results   []ProductResult `json:"results"`
	Summary   RoundSummary    `json:"summary"`
}

// RoundSummary contains totals across all products
type RoundSummary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalNetProfit float64 `json:"total_net_profit"`
	Products       int     `json:"products"`
}

// ProductResult is one product's outcome, raw and formatted for display
type ProductResult struct {
	Product            string         `json:"product"`
	Segment            string         `json:"segment"`
	Scores             Scores         `json:"scores"`
	DemandShare        float64        `json:"demand_share"`
	PotentialSales     int            `json:"potential_sales"`
	UnitsSold          int            `json:"units_sold"`
	Revenue            float64        `json:"revenue"`
	COGS               float64        `json:"cogs"`
	ContributionMargin float64        `json:"contribution_margin"`
	NetProfit          float64        `json:"net_profit"`
	InventoryRemaining int            `json:"inventory_remaining"`
	MarketSharePercent float64        `json:"market_share_percent"`
	Outcome            string         `json:"outcome"` // "PROFIT", "LOSS", "BREAKEVEN"
	Display            report.Display `json:"display"`
}

// Scores is the satisfaction breakdown
type Scores struct {
	Price        float64 `json:"price"`
	Performance  float64 `json:"performance"`
	Size         float64 `json:"size"`
	Satisfaction float64 `json:"satisfaction"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Rank   int           `json:"rank"`
	Name   string        `json:"name"`
	Result ProductResult `json:"result"`
}

// SegmentInfo represents one market segment
type SegmentInfo struct {
	Name             string     `json:"name"`
	MarketSize       int        `json:"market_size"`
	IdealPrice       PriceRange `json:"ideal_price"`
	IdealPerformance float64    `json:"ideal_performance"`
	IdealSize        float64    `json:"ideal_size"`
}

// PriceRange is an inclusive price band
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
