package model

import (
	"errors"
	"fmt"
)

// PriceRange is the ideal price band a segment prefers, in dollars.
type PriceRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Mid is the price customers in the segment are happiest with.
func (r PriceRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// HalfWidth is the distance from the midpoint to either edge of the band.
func (r PriceRange) HalfWidth() float64 {
	return (r.Max - r.Min) / 2
}

// SegmentProfile describes a customer group and the product it would buy
// if it could have anything.
// Units:
// - MarketSize: units demanded per round by the whole segment
// - IdealPrice: $ per unit
// - IdealPerformance, IdealSize: abstract product scale (0..10, 0..20 in the classic game)
type SegmentProfile struct {
	Name             string
	MarketSize       int
	IdealPrice       PriceRange
	IdealPerformance float64
	IdealSize        float64
}

func (s SegmentProfile) Validate() error {
	if s.Name == "" {
		return errors.New("segment name is required")
	}
	if s.MarketSize <= 0 {
		return fmt.Errorf("segment %q: MarketSize must be > 0", s.Name)
	}
	if s.IdealPrice.Min < 0 || s.IdealPrice.Max < 0 {
		return fmt.Errorf("segment %q: IdealPrice must be >= 0", s.Name)
	}
	if s.IdealPrice.Min > s.IdealPrice.Max {
		return fmt.Errorf("segment %q: IdealPrice must satisfy Min<=Max", s.Name)
	}
	if s.IdealPerformance < 0 {
		return fmt.Errorf("segment %q: IdealPerformance must be >= 0", s.Name)
	}
	if s.IdealSize < 0 {
		return fmt.Errorf("segment %q: IdealSize must be >= 0", s.Name)
	}
	return nil
}
