package main

import (
	"fmt"

	"capsim-round/internal/report"
	"capsim-round/internal/simulation"
	"capsim-round/internal/strategy"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(root *rootOptions) *cobra.Command {
	var (
		segmentName  string
		strategyName string
		marketing    float64
		capacity     int
		priceSteps   int
	)
	cmd := &cobra.Command{
		Use:     "optimize",
		Short:   "Suggest product attributes for a segment given capacity and marketing spend",
		Example: `  capsim optimize --segment Traditional --capacity 1000 --marketing 1500 --strategy oracle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := root.catalog("")
			if err != nil {
				return err
			}
			seg, err := cat.Lookup(segmentName)
			if err != nil {
				return err
			}
			strat, err := strategy.New(strategyName, strategy.OracleParams{PriceSteps: priceSteps})
			if err != nil {
				return err
			}

			in, err := strat.Decide(strategy.Context{
				Name:            segmentName + " (" + strat.Name() + ")",
				Segment:         seg,
				MarketingBudget: marketing,
				Capacity:        capacity,
			})
			if err != nil {
				return err
			}
			logrus.Debugf("strategy %s chose %+v", strat.Name(), in)

			res, err := simulation.New(cat).SimulateRound(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Strategy=%s\n", strat.Name())
			fmt.Fprintf(out, "Price=%.2f Performance=%.2f Size=%.2f\n\n", in.Price, in.Performance, in.Size)
			fmt.Fprintf(out, "Units Sold: %s\nNet Profit: %s\nMarket Share: %s\n",
				report.Units(res.UnitsSold), report.Currency(res.NetProfit), report.Percent(res.MarketSharePercent))
			return nil
		},
	}
	cmd.Flags().StringVar(&segmentName, "segment", "", "Segment name")
	cmd.Flags().StringVar(&strategyName, "strategy", "ideal", "Strategy: ideal or oracle")
	cmd.Flags().Float64Var(&marketing, "marketing", 0, "Marketing budget ($)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Production capacity (units)")
	cmd.Flags().IntVar(&priceSteps, "price-steps", 400, "Oracle price grid resolution")
	_ = cmd.MarkFlagRequired("segment")
	return cmd
}
