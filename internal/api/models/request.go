package models

// SimulateRequest represents the request body for simulating a round
type SimulateRequest struct {
	Products []ProductRequest `json:"products" binding:"required,min=1,dive"`
}

// ProductRequest is one product's decisions. Ranges mirror the decision form.
type ProductRequest struct {
	Name            string  `json:"name,omitempty"`
	Segment         string  `json:"segment" binding:"required"`
	Price           float64 `json:"price" binding:"gte=0,lte=100"`
	Performance     float64 `json:"performance" binding:"gte=0,lte=10"`
	Size            float64 `json:"size" binding:"gte=0,lte=20"`
	MarketingBudget float64 `json:"marketing_budget" binding:"gte=0,lte=50000"`
	Capacity        int     `json:"capacity" binding:"gte=0,lte=10000"`
}

// CompareRequest represents a request to compare what-if variations of one product
type CompareRequest struct {
	Base       ProductRequest     `json:"base"`
	Variations []ProductVariation `json:"variations" binding:"required,min=1,dive"`
}

// ProductVariation overrides non-zero fields of the base product
type ProductVariation struct {
	Name    string          `json:"name" binding:"required"`
	Product ProductOverride `json:"product"`
}

// ProductOverride is a ProductRequest where every field is optional
type ProductOverride struct {
	Segment         string  `json:"segment,omitempty"`
	Price           float64 `json:"price,omitempty" binding:"gte=0,lte=100"`
	Performance     float64 `json:"performance,omitempty" binding:"gte=0,lte=10"`
	Size            float64 `json:"size,omitempty" binding:"gte=0,lte=20"`
	MarketingBudget float64 `json:"marketing_budget,omitempty" binding:"gte=0,lte=50000"`
	Capacity        int     `json:"capacity,omitempty" binding:"gte=0,lte=10000"`
}
