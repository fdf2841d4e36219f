package main

import (
	"capsim-round/internal/market"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel     string
	segmentsFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "capsim",
		Short:        "Single-round business simulation calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.segmentsFile, "segments", "", "Optional YAML file replacing the built-in market segments")

	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(newSegmentsCmd(opts))
	cmd.AddCommand(newCompareCmd(opts))
	cmd.AddCommand(newOptimizeCmd(opts))
	return cmd
}

// catalog resolves the market: --segments wins over a round file's segments_file.
func (o *rootOptions) catalog(fromConfig string) (*market.Catalog, error) {
	path := o.segmentsFile
	if path == "" {
		path = fromConfig
	}
	if path != "" {
		logrus.Debugf("loading segments from %s", path)
	}
	return market.LoadOrDefault(path)
}
