// SPDX-License-Identifier: MIT

// Command cubepers computes persistence pairs of scalar volumes.
//
//	cubepers compute volume.txt --threshold 0.5 --csv
//	cubepers inspect volume.txt.pers
//	cubepers convert volume.txt volume.raw
//	cubepers config --out run.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/internal/config"
	"github.com/katalvlaran/cubepers/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "cubepers",
		Short: "Persistent homology of scalar fields on cubical grids",
		Long: `cubepers builds the lower-star cubical filtration of a 1-8 dimensional
scalar grid, reduces its boundary matrices over GF(2) and reports every
persistence pair above a threshold, with optional provenance certificates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	root.AddCommand(a.computeCmd())
	root.AddCommand(a.inspectCmd())
	root.AddCommand(a.convertCmd())
	root.AddCommand(a.configCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
