package config

import (
	"os"
	"path/filepath"
	"testing"

	"capsim-round/internal/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "round.yaml", `products:
  - name: Eat
    segment: Traditional
    price: 29.5
    performance: 5.2
    size: 14.8
    marketing_budget: 2000
    capacity: 1500
  - segment: Low-End
    price: 19
    performance: 4
    size: 16
    capacity: 900
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Products, 2)
	assert.Equal(t, ProductConfig{
		Name: "Eat", Segment: "Traditional", Price: 29.5, Performance: 5.2, Size: 14.8, MarketingBudget: 2000, Capacity: 1500,
	}, c.Products[0])
	assert.Equal(t, "Product B", c.Products[1].Name)

	inputs := c.Inputs()
	require.Len(t, inputs, 2)
	assert.Equal(t, "Low-End", inputs[1].Segment)
	assert.Equal(t, 900, inputs[1].Capacity)

	cat, err := c.Catalog()
	require.NoError(t, err)
	assert.Same(t, market.Default(), cat)
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	tests := map[string]string{
		"negative price":   "products:\n  - segment: Traditional\n    price: -1\n",
		"price too high":   "products:\n  - segment: Traditional\n    price: 101\n",
		"performance high": "products:\n  - segment: Traditional\n    performance: 11\n",
		"size high":        "products:\n  - segment: Traditional\n    size: 21\n",
		"marketing high":   "products:\n  - segment: Traditional\n    marketing_budget: 50001\n",
		"capacity high":    "products:\n  - segment: Traditional\n    capacity: 10001\n",
		"negative cap":     "products:\n  - segment: Traditional\n    capacity: -5\n",
		"missing segment":  "products:\n  - price: 30\n",
		"no products":      "products: []\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "round.yaml", body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadUnchecked_ResolvesSegmentsFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	segPath := writeFile(t, dir, "segments.yaml", `segments:
  - name: High-End
    market_size: 3000
    ideal_price: {min: 36, max: 40}
    ideal_performance: 8
    ideal_size: 12
`)
	path := writeFile(t, dir, "round.yaml", "segments_file: segments.yaml\nproducts:\n  - segment: High-End\n    price: 38\n")

	c, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, segPath, c.SegmentsFile)

	cat, err := c.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"High-End"}, cat.Names())
}

func TestValidate_Nil(t *testing.T) {
	var c *Config
	assert.Error(t, c.Validate())
}

func TestDefaultRound(t *testing.T) {
	c := DefaultRound()
	require.NoError(t, c.Validate())
	require.Len(t, c.Products, 2)
	assert.Equal(t, market.Traditional, c.Products[0].Segment)
	assert.Equal(t, 1000, c.Products[0].Capacity)
	assert.Equal(t, market.LowEnd, c.Products[1].Segment)
	assert.Equal(t, 1200, c.Products[1].Capacity)
}

func TestMergeProduct(t *testing.T) {
	base := DefaultRound().Products[0]
	got := MergeProduct(base, ProductConfig{Name: "Cheaper", Price: 28.5})
	assert.Equal(t, "Cheaper", got.Name)
	assert.Equal(t, 28.5, got.Price)
	assert.Equal(t, base.Segment, got.Segment)
	assert.Equal(t, base.Performance, got.Performance)
	assert.Equal(t, base.Capacity, got.Capacity)

	got = MergeProduct(base, ProductConfig{Segment: market.LowEnd, Capacity: 3000, MarketingBudget: 0})
	assert.Equal(t, market.LowEnd, got.Segment)
	assert.Equal(t, 3000, got.Capacity)
	assert.Equal(t, base.MarketingBudget, got.MarketingBudget)
}

func TestValidateProduct(t *testing.T) {
	assert.NoError(t, ValidateProduct(DefaultRound().Products[1]))
	assert.Error(t, ValidateProduct(ProductConfig{Name: "x", Segment: "Traditional", Price: 150}))
}
