package market

import (
	"fmt"
	"sync"

	"capsim-round/internal/model"
)

const (
	Traditional = "Traditional"
	LowEnd      = "Low-End"
)

// Catalog is a read-only registry of segments. It is built once and never mutated,
// so it is safe to share between goroutines.
type Catalog struct {
	order    []string
	segments map[string]model.SegmentProfile
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the classic two-segment market.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(
			model.SegmentProfile{
				Name:             Traditional,
				MarketSize:       7000,
				IdealPrice:       model.PriceRange{Min: 28, Max: 32},
				IdealPerformance: 5.0,
				IdealSize:        15.0,
			},
			model.SegmentProfile{
				Name:             LowEnd,
				MarketSize:       8000,
				IdealPrice:       model.PriceRange{Min: 18, Max: 22},
				IdealPerformance: 4.0,
				IdealSize:        16.0,
			},
		)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// NewCatalog validates each profile and rejects duplicate names.
func NewCatalog(segments ...model.SegmentProfile) (*Catalog, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: catalog needs at least one segment", ErrInvalidSegment)
	}
	c := &Catalog{
		order:    make([]string, 0, len(segments)),
		segments: make(map[string]model.SegmentProfile, len(segments)),
	}
	for _, s := range segments {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSegment, err)
		}
		if _, dup := c.segments[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate segment %q", ErrInvalidSegment, s.Name)
		}
		c.order = append(c.order, s.Name)
		c.segments[s.Name] = s
	}
	return c, nil
}

func (c *Catalog) Lookup(name string) (model.SegmentProfile, error) {
	s, ok := c.segments[name]
	if !ok {
		return model.SegmentProfile{}, &UnknownSegmentError{Name: name}
	}
	return s, nil
}

// Names returns segment names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Segments returns copies of every profile in registration order.
func (c *Catalog) Segments() []model.SegmentProfile {
	out := make([]model.SegmentProfile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.segments[name])
	}
	return out
}
