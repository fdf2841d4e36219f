package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"capsim-round/internal/model"
)

var csvHeader = []string{
	"product",
	"segment",
	"price_score",
	"performance_score",
	"size_score",
	"satisfaction",
	"demand_share",
	"potential_sales",
	"units_sold",
	"revenue",
	"cogs",
	"contribution_margin",
	"net_profit",
	"inventory_remaining",
	"market_share_percent",
	"outcome",
}

func WriteResultsCSV(path string, results []model.RoundResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteResults(f, results)
}

func WriteResults(out io.Writer, results []model.RoundResult) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Product,
			r.Segment,
			fmtFloat(r.Scores.Price),
			fmtFloat(r.Scores.Performance),
			fmtFloat(r.Scores.Size),
			fmtFloat(r.Scores.Satisfaction),
			fmtFloat(r.DemandShare),
			strconv.Itoa(r.PotentialSales),
			strconv.Itoa(r.UnitsSold),
			fmtFloat(r.Revenue),
			fmtFloat(r.COGS),
			fmtFloat(r.ContributionMargin),
			fmtFloat(r.NetProfit),
			strconv.Itoa(r.InventoryRemaining),
			fmtFloat(r.MarketSharePercent),
			string(r.Outcome),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
