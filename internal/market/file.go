package market

import (
	"fmt"
	"os"

	"capsim-round/internal/model"

	"gopkg.in/yaml.v3"
)

// segmentsFile is the on-disk shape of a custom market (YAML):
//
//	segments:
//	  - name: Traditional
//	    market_size: 7000
//	    ideal_price: {min: 28, max: 32}
//	    ideal_performance: 5.0
//	    ideal_size: 15.0
type segmentsFile struct {
	Segments []segmentEntry `yaml:"segments"`
}

type segmentEntry struct {
	Name             string           `yaml:"name"`
	MarketSize       int              `yaml:"market_size"`
	IdealPrice       model.PriceRange `yaml:"ideal_price"`
	IdealPerformance float64          `yaml:"ideal_performance"`
	IdealSize        float64          `yaml:"ideal_size"`
}

// LoadSegmentsFile builds a Catalog from a YAML segments file.
func LoadSegmentsFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f segmentsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	profiles := make([]model.SegmentProfile, 0, len(f.Segments))
	for _, e := range f.Segments {
		profiles = append(profiles, model.SegmentProfile{
			Name:             e.Name,
			MarketSize:       e.MarketSize,
			IdealPrice:       e.IdealPrice,
			IdealPerformance: e.IdealPerformance,
			IdealSize:        e.IdealSize,
		})
	}
	c, err := NewCatalog(profiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault returns Default() when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadSegmentsFile(path)
}
