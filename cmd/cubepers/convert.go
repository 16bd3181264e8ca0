// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/field"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a volume to the raw binary format",
		Long: `Reads a text (.txt, .cub) or raw volume and writes it in the raw format
(int32 dimension, uint32 axis sizes, uint16 values). Values are truncated
to uint16; a warning reports how many were not representable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := field.Load(args[0])
			if err != nil {
				return err
			}
			if lossy := unrepresentable(f); lossy > 0 {
				a.logger.Warn("values truncated to uint16",
					zap.String("input", args[0]), zap.Int("values", lossy))
			}
			return writeTo(args[1], func(w io.Writer) error {
				return field.WriteRaw(w, f)
			})
		},
	}
}

// unrepresentable counts values that are not integers in [0, 65535].
func unrepresentable(f *field.Field) int {
	n := 0
	for i := 0; i < f.Size(); i++ {
		v := f.AtIndex(i)
		if v < 0 || v > math.MaxUint16 || v != math.Trunc(v) {
			n++
		}
	}
	return n
}
