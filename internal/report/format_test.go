package report

import (
	"bytes"
	"testing"

	"capsim-round/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$30,000.00", Currency(30000))
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "$0.13", Currency(0.125))
	assert.Equal(t, "-$1,500.00", Currency(-1500))
	assert.Equal(t, "$1,234,567.89", Currency(1234567.891))
}

func TestSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$10,500.00", SignedCurrency(10500))
	assert.Equal(t, "-$5,000.00", SignedCurrency(-5000))
	assert.Equal(t, "$0.00", SignedCurrency(0))
	assert.Equal(t, "$0.00", SignedCurrency(0.001))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "14.29%", Percent(1000.0/7000.0*100))
	assert.Equal(t, "15.00%", Percent(15))
	assert.Equal(t, "0.00%", Percent(0))
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "1,000", Units(1000))
	assert.Equal(t, "0", Units(0))
}

func TestWriteText(t *testing.T) {
	results := []model.RoundResult{
		{Product: "Product A", Segment: "Traditional", UnitsSold: 1000, Revenue: 30000, NetProfit: 10500, MarketSharePercent: 1000.0 / 7000.0 * 100},
		{Segment: "Low-End", NetProfit: -1000, InventoryRemaining: 1200},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "Round Results")
	assert.Contains(t, out, "Product A (Traditional)")
	assert.Contains(t, out, "Units Sold: 1,000")
	assert.Contains(t, out, "Revenue: $30,000.00")
	assert.Contains(t, out, "Net Profit: $10,500.00")
	assert.Contains(t, out, "Market Share: 14.29%")
	assert.Contains(t, out, "Product (Low-End)")
	assert.Contains(t, out, "Net Profit: -$1,000.00")
	assert.Contains(t, out, "Inventory Remaining: 1,200")
}
