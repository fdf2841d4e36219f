package simulation

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"capsim-round/internal/market"
	"capsim-round/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResults(t *testing.T) {
	res, err := New(nil).SimulateRound(model.ProductInput{
		Name: "Product A", Segment: market.Traditional, Price: 30, Performance: 5, Size: 15, MarketingBudget: 1500, Capacity: 1000,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []model.RoundResult{*res}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])

	row := rows[1]
	assert.Equal(t, "Product A", row[0])
	assert.Equal(t, "Traditional", row[1])
	assert.Equal(t, "1000", row[8])
	assert.Equal(t, "30000.000000", row[9])
	assert.Equal(t, "10500.000000", row[12])
	assert.Equal(t, "0", row[13])
	assert.Equal(t, "14.285714", row[14])
	assert.Equal(t, "PROFIT", row[15])
}

func TestWriteResultsCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.csv")
	require.NoError(t, WriteResultsCSV(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "product,segment,price_score")
}
