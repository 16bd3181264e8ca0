// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/pairio"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.pers>",
		Short: "Print the pairs stored in a binary pairs file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			pairs, err := pairio.ReadPairs(f)
			if err != nil {
				return err
			}
			a.logger.Debug("pairs file decoded", zap.String("path", args[0]), zap.Int("dims", len(pairs)))
			return pairio.WriteCoordText(cmd.OutOrStdout(), pairs)
		},
	}
}
