// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) configCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration that compute would use: built-in defaults,
overlaid by --config and --log-level. With --out the YAML is written to a
file, which can be edited and passed back with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return a.cfg.Encode(cmd.OutOrStdout())
			}
			if err := a.cfg.WriteYAML(out); err != nil {
				return err
			}
			a.logger.Info("config written", zap.String("path", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write the YAML to this file instead of stdout")
	return cmd
}
