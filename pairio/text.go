// SPDX-License-Identifier: MIT

package pairio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cubepers/persistence"
)

var cellNames = [...]string{"Vertex", "Edge", "Face", "Cube"}

// CellName returns the report name of a d-dimensional cell.
func CellName(d int) string {
	if d >= 0 && d < len(cellNames) {
		return cellNames[d]
	}
	return fmt.Sprintf("%dD-Cell", d)
}

// WriteText writes the human-readable report: a section per dimension in
// increasing order, pairs in the order given.
func WriteText(w io.Writer, pairs [][]persistence.Pair) error {
	bw := bufio.NewWriter(w)
	for d, ps := range pairs {
		fmt.Fprintf(bw, "%s %s Pairs, Number = %d\n", CellName(d), CellName(d+1), len(ps))
		for _, p := range ps {
			bw.WriteString(formatValue(p.BirthValue))
			bw.WriteByte('\t')
			bw.WriteString(formatValue(p.DeathValue))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// WriteCoordText writes decoded binary pairs, one "birth -> death" line each.
func WriteCoordText(w io.Writer, pairs [][]CoordPair) error {
	bw := bufio.NewWriter(w)
	for d, ps := range pairs {
		fmt.Fprintf(bw, "%s %s Pairs, Number = %d\n", CellName(d), CellName(d+1), len(ps))
		for _, p := range ps {
			fmt.Fprintf(bw, "%s\t%s\n", p.Birth, p.Death)
		}
	}
	return bw.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
