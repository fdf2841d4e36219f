package simulation

import (
	"math"

	"capsim-round/internal/model"
)

// Satisfaction weights. Price dominates customer choice in this model.
const (
	PriceWeight       = 0.5
	PerformanceWeight = 0.25
	SizeWeight        = 0.25
)

// ScoreSatisfaction rates how well a product matches a segment, in [0,1].
func ScoreSatisfaction(p model.ProductInput, seg model.SegmentProfile) float64 {
	return Score(p, seg).Satisfaction
}

// Score returns the weighted satisfaction along with its three sub-scores.
func Score(p model.ProductInput, seg model.SegmentProfile) model.Scores {
	s := model.Scores{
		Price:       PriceScore(p.Price, seg.IdealPrice),
		Performance: linearFalloff(p.Performance, seg.IdealPerformance),
		Size:        linearFalloff(p.Size, seg.IdealSize),
	}
	s.Satisfaction = PriceWeight*s.Price + PerformanceWeight*s.Performance + SizeWeight*s.Size
	return s
}

// PriceScore is 1 at the midpoint of the ideal range and falls linearly to 0 at
// either edge. A zero-width range scores 1 only at that exact price.
func PriceScore(price float64, r model.PriceRange) float64 {
	half := r.HalfWidth()
	if half <= 0 {
		if price == r.Mid() {
			return 1
		}
		return 0
	}
	return clamp01(1 - math.Abs(price-r.Mid())/half)
}

// linearFalloff loses one point of score per unit of distance from ideal.
func linearFalloff(actual, ideal float64) float64 {
	return math.Max(0, 1-math.Abs(actual-ideal))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
