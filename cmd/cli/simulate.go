package main

import (
	"fmt"
	"os"
	"path/filepath"

	"capsim-round/internal/config"
	"capsim-round/internal/report"
	"capsim-round/internal/simulation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var (
		cfgPath string
		outPath string
		product config.ProductConfig
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one round for a round file or a single product",
		Example: `  capsim simulate --config examples/round.yaml --out results/round.csv
  capsim simulate --segment Traditional --price 30 --performance 5 --size 15 --marketing 1500 --capacity 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := roundConfig(cmd, cfgPath, product)
			if err != nil {
				return err
			}
			cat, err := root.catalog(cfg.SegmentsFile)
			if err != nil {
				return err
			}

			round, err := simulation.New(cat).SimulateRounds(cfg.Inputs())
			if err != nil {
				return err
			}
			logrus.Infof("simulated %d products", len(round.Results))

			out := cmd.OutOrStdout()
			if err := report.WriteText(out, round.Results); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nTotal Revenue: %s  Total Net Profit: %s\n",
				report.Currency(round.TotalRevenue), report.SignedCurrency(round.TotalNetProfit))

			if outPath != "" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return err
				}
				if err := simulation.WriteResultsCSV(outPath, round.Results); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(round.Results), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML round file")
	cmd.Flags().StringVar(&outPath, "out", "", "Optional CSV output path")
	cmd.Flags().StringVar(&product.Name, "name", "Product A", "Product label")
	cmd.Flags().StringVar(&product.Segment, "segment", "", "Segment name (e.g. Traditional, Low-End)")
	cmd.Flags().Float64Var(&product.Price, "price", 0, "Unit price ($)")
	cmd.Flags().Float64Var(&product.Performance, "performance", 0, "Performance")
	cmd.Flags().Float64Var(&product.Size, "size", 0, "Size")
	cmd.Flags().Float64Var(&product.MarketingBudget, "marketing", 0, "Marketing budget ($)")
	cmd.Flags().IntVar(&product.Capacity, "capacity", 0, "Production capacity (units)")
	cmd.MarkFlagsMutuallyExclusive("config", "segment")
	return cmd
}

// roundConfig loads --config, or builds a one-product round from flags.
func roundConfig(cmd *cobra.Command, cfgPath string, product config.ProductConfig) (*config.Config, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}
	if !cmd.Flags().Changed("segment") {
		return nil, fmt.Errorf("either --config or --segment is required")
	}
	cfg := &config.Config{Products: []config.ProductConfig{product}}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
