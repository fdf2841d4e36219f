package report

import (
	"fmt"
	"io"

	"capsim-round/internal/model"
)

// Display is a RoundResult rendered for a UI.
type Display struct {
	UnitsSold          string `json:"units_sold"`
	Revenue            string `json:"revenue"`
	NetProfit          string `json:"net_profit"`
	InventoryRemaining string `json:"inventory_remaining"`
	MarketShare        string `json:"market_share"`
}

func Format(r model.RoundResult) Display {
	return Display{
		UnitsSold:          Units(r.UnitsSold),
		Revenue:            Currency(r.Revenue),
		NetProfit:          Currency(r.NetProfit),
		InventoryRemaining: Units(r.InventoryRemaining),
		MarketShare:        Percent(r.MarketSharePercent),
	}
}

// WriteText writes the "Round Results" block, one paragraph per product.
func WriteText(w io.Writer, results []model.RoundResult) error {
	if _, err := fmt.Fprintln(w, "Round Results"); err != nil {
		return err
	}
	for _, r := range results {
		d := Format(r)
		name := r.Product
		if name == "" {
			name = "Product"
		}
		_, err := fmt.Fprintf(w,
			"\n%s (%s)\n  Units Sold: %s\n  Revenue: %s\n  Net Profit: %s\n  Inventory Remaining: %s\n  Market Share: %s\n",
			name, r.Segment, d.UnitsSold, d.Revenue, d.NetProfit, d.InventoryRemaining, d.MarketShare,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
