package main

import (
	"flag"
	"fmt"
	"os"

	"capsim-round/internal/config"
	"capsim-round/internal/report"
	"capsim-round/internal/simulation"

	"github.com/sirupsen/logrus"
)

// Demo:
// - Build the classic round (Product A in Traditional, Product B in Low-End)
// - Show how each product scores against its segment
// - Print the round results the way the decision form shows them
func main() {
	cfgPath := flag.String("config", "", "Path to YAML round file (optional)")
	outCSV := flag.String("out", "", "Optional path to write results CSV (e.g. results/round.csv)")
	flag.Parse()

	cfg := config.DefaultRound()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logrus.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	cat, err := cfg.Catalog()
	if err != nil {
		logrus.Fatalf("load segments: %v", err)
	}
	engine := simulation.New(cat)

	round, err := engine.SimulateRounds(cfg.Inputs())
	if err != nil {
		logrus.Fatalf("simulate: %v", err)
	}

	for _, r := range round.Results {
		fmt.Printf(
			"%-10s %-12s price=%.2f perf=%.2f size=%.2f  satisfaction=%.3f  demand=%5.1f%%  potential=%d\n",
			r.Product,
			r.Segment,
			r.Scores.Price,
			r.Scores.Performance,
			r.Scores.Size,
			r.Scores.Satisfaction,
			r.DemandShare*100,
			r.PotentialSales,
		)
	}
	fmt.Println()

	if err := report.WriteText(os.Stdout, round.Results); err != nil {
		logrus.Fatal(err)
	}

	if *outCSV != "" {
		if err := simulation.WriteResultsCSV(*outCSV, round.Results); err != nil {
			logrus.Fatal(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Total Revenue=%s  Total Net Profit=%s\n",
		report.Currency(round.TotalRevenue), report.SignedCurrency(round.TotalNetProfit))
}
