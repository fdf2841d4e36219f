package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"capsim-round/internal/market"
	"capsim-round/internal/model"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape of one round (YAML).
type Config struct {
	// Optional: replace the built-in market with segments from a separate YAML
	// (see market.LoadSegmentsFile). Relative paths resolve against the config file.
	SegmentsFile string          `yaml:"segments_file"`
	Products     []ProductConfig `yaml:"products" validate:"required,min=1,dive"`
}

// ProductConfig ranges mirror the classic decision form.
type ProductConfig struct {
	Name            string  `yaml:"name"`
	Segment         string  `yaml:"segment" validate:"required"`
	Price           float64 `yaml:"price" validate:"gte=0,lte=100"`
	Performance     float64 `yaml:"performance" validate:"gte=0,lte=10"`
	Size            float64 `yaml:"size" validate:"gte=0,lte=20"`
	MarketingBudget float64 `yaml:"marketing_budget" validate:"gte=0,lte=50000"`
	Capacity        int     `yaml:"capacity" validate:"gte=0,lte=10000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	for i := range c.Products {
		if c.Products[i].Name == "" {
			c.Products[i].Name = fmt.Sprintf("Product %c", 'A'+rune(i%26))
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config and resolves segments_file, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.SegmentsFile != "" && !filepath.IsAbs(c.SegmentsFile) {
		// Prefer the config file directory, fall back to cwd.
		cand := filepath.Join(filepath.Dir(path), c.SegmentsFile)
		if _, err := os.Stat(cand); err == nil {
			c.SegmentsFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// Catalog returns the market this round is played in.
func (c *Config) Catalog() (*market.Catalog, error) {
	return market.LoadOrDefault(c.SegmentsFile)
}

func (c *Config) Inputs() []model.ProductInput {
	out := make([]model.ProductInput, 0, len(c.Products))
	for _, p := range c.Products {
		out = append(out, p.ToModelInput())
	}
	return out
}

func (p ProductConfig) ToModelInput() model.ProductInput {
	return model.ProductInput{
		Name:            p.Name,
		Segment:         p.Segment,
		Price:           p.Price,
		Performance:     p.Performance,
		Size:            p.Size,
		MarketingBudget: p.MarketingBudget,
		Capacity:        p.Capacity,
	}
}

// ValidateProduct checks a single product against the form ranges.
func ValidateProduct(p ProductConfig) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("product %q invalid: %w", p.Name, err)
	}
	return nil
}

// DefaultRound is the classic two-product round: one product aimed at each segment.
func DefaultRound() *Config {
	return &Config{
		Products: []ProductConfig{
			{
				Name:            "Product A",
				Segment:         market.Traditional,
				Price:           30,
				Performance:     5,
				Size:            15,
				MarketingBudget: 1500,
				Capacity:        1000,
			},
			{
				Name:            "Product B",
				Segment:         market.LowEnd,
				Price:           20,
				Performance:     4,
				Size:            16,
				MarketingBudget: 1000,
				Capacity:        1200,
			},
		},
	}
}

// MergeProduct overlays non-zero fields from override onto base.
// Used to build what-if variations of a base product.
func MergeProduct(base, override ProductConfig) ProductConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Segment != "" {
		out.Segment = override.Segment
	}
	if override.Price != 0 {
		out.Price = override.Price
	}
	if override.Performance != 0 {
		out.Performance = override.Performance
	}
	if override.Size != 0 {
		out.Size = override.Size
	}
	// Note: zero is a legal budget/capacity but cannot be expressed as an override.
	if override.MarketingBudget != 0 {
		out.MarketingBudget = override.MarketingBudget
	}
	if override.Capacity != 0 {
		out.Capacity = override.Capacity
	}
	return out
}
