// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/internal/config"
	"github.com/katalvlaran/cubepers/internal/logging"
	"github.com/katalvlaran/cubepers/pairio"
	"github.com/katalvlaran/cubepers/persistence"
)

func (a *app) computeCmd() *cobra.Command {
	var (
		threshold      float64
		noCertificates bool
		csv            bool
		reference      string
	)
	cmd := &cobra.Command{
		Use:   "compute <input>",
		Short: "Compute persistence pairs of a volume file",
		Long: `Reads a text (.txt, .cub) or raw binary volume and writes, next to it:
  <input>.pers         binary pairs
  <input>.pers.txt     text report
  <input>.pers.csv     CSV rows (with --csv)
  <input>.red.<d>      reduction certificates
  <input>.bnd.<d>      boundary certificates

With --reference, the pairs are also matched against a reference diagram in
CSV form: per dimension the as many most persistent pairs as the reference
has holes are kept (perfect when they exceed the weakest reference hole,
otherwise to fix) and the rest above threshold are to remove.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("threshold") {
				a.cfg.Threshold = threshold
			}
			if noCertificates {
				a.cfg.Certificates = false
			}
			if csv {
				a.cfg.Outputs.CSV = true
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			log, _ := logging.WithRun(a.logger)
			res, err := runCompute(args[0], a.cfg, log)
			if err != nil {
				log.Error("compute failed", zap.Error(err))
				return err
			}
			printSummary(cmd.OutOrStdout(), res)
			if reference != "" {
				return printMatching(cmd.OutOrStdout(), reference, res, a.cfg.Threshold)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Report pairs with persistence above this value")
	cmd.Flags().BoolVar(&noCertificates, "no-certificates", false, "Skip certificate files")
	cmd.Flags().BoolVar(&csv, "csv", false, "Also write <input>.pers.csv")
	cmd.Flags().StringVar(&reference, "reference", "", "Match pairs against this .pers.csv diagram")
	return cmd
}

// runCompute loads input, computes its pairs and writes the configured outputs.
func runCompute(input string, cfg *config.Config, log *zap.Logger) (*persistence.Result, error) {
	f, err := field.Load(input)
	if err != nil {
		return nil, err
	}
	log.Info("volume loaded", zap.String("input", input), zap.Ints("shape", f.Shape()))

	opts := []persistence.Option{
		persistence.WithThreshold(cfg.Threshold),
		persistence.WithLogger(log),
		persistence.WithOrderCheck(cfg.OrderCheck),
	}
	if cfg.Certificates {
		opts = append(opts, persistence.WithCertificateSink(&pairio.FileSink{Base: input, Dim: f.Dim(), Logger: log}))
	}
	res, err := persistence.Compute(f, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Outputs.Binary {
		if err := writeTo(input+".pers", func(w io.Writer) error {
			return pairio.WritePairs(w, res.Pairs, res.Dim)
		}); err != nil {
			return nil, err
		}
	}
	if cfg.Outputs.Text {
		if err := writeTo(input+".pers.txt", func(w io.Writer) error {
			return pairio.WriteText(w, res.Pairs)
		}); err != nil {
			return nil, err
		}
	}
	if cfg.Outputs.CSV {
		if err := writeTo(input+".pers.csv", func(w io.Writer) error {
			return pairio.WriteCSV(w, res.Pairs)
		}); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func writeTo(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return write(f)
}

func printSummary(w io.Writer, res *persistence.Result) {
	for d, s := range persistence.SummarizeAll(res) {
		fmt.Fprintf(w, "%s %s Pairs = %d (matched %d, max persistence %g)\n",
			pairio.CellName(d), pairio.CellName(d+1), s.Count, res.Matched[d], s.Max)
	}
	fmt.Fprintf(w, "Essential class at %s, value %g\n", res.Essential.Coord, res.Essential.Value)
	fmt.Fprintf(w, "Filtration building time = %s\nReduction time = %s\n",
		res.Timing.Filtration, res.Timing.Reduction)
}

func printMatching(w io.Writer, path string, res *persistence.Result, threshold float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening reference: %w", err)
	}
	defer f.Close()
	ref, err := pairio.ReadCSV(f, res.Dim)
	if err != nil {
		return err
	}
	for d, pairs := range res.Pairs {
		m := persistence.MatchDiagram(pairs, len(ref[d]), persistence.MinPersistence(ref[d]), threshold)
		fmt.Fprintf(w, "%s %s Match: %d perfect, %d to fix, %d to remove\n",
			pairio.CellName(d), pairio.CellName(d+1), len(m.Perfect), len(m.Fix), len(m.Remove))
	}
	return nil
}
