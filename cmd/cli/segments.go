package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSegmentsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "List market segments and their ideal products",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := root.catalog("")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %-8s %-14s %-12s %-6s\n", "segment", "size", "ideal_price", "performance", "size")
			for _, s := range cat.Segments() {
				fmt.Fprintf(out, "%-14s %-8d %5.2f-%-8.2f %-12.1f %-6.1f\n",
					s.Name, s.MarketSize, s.IdealPrice.Min, s.IdealPrice.Max, s.IdealPerformance, s.IdealSize)
			}
			return nil
		},
	}
}
