package main

import (
	"fmt"

	"capsim-round/internal/analysis"
	"capsim-round/internal/config"
	"capsim-round/internal/report"
	"capsim-round/internal/simulation"

	"github.com/spf13/cobra"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank the products of a round file by net profit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultRound()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cat, err := root.catalog(cfg.SegmentsFile)
			if err != nil {
				return err
			}
			round, err := simulation.New(cat).SimulateRounds(cfg.Inputs())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-16s %-12s %-8s %-14s %-10s\n", "rank", "product", "segment", "units", "net_profit", "share")
			for _, r := range analysis.RankByNetProfit(round.Results) {
				fmt.Fprintf(out, "%-4d %-16s %-12s %-8d %-14s %-10s\n",
					r.Rank, r.Product, r.Segment, r.UnitsSold, report.Currency(r.NetProfit), report.Percent(r.MarketSharePercent))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML round file (defaults to the classic two-product round)")
	return cmd
}
