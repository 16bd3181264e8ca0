// SPDX-License-Identifier: MIT

package pairio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/persistence"
)

// PairRecord is one CSV row. Coordinates are space-separated, 0-indexed and
// in field axis order.
type PairRecord struct {
	Dim         int     `csv:"dim"`
	BirthValue  float64 `csv:"birth_value"`
	DeathValue  float64 `csv:"death_value"`
	Persistence float64 `csv:"persistence"`
	Birth       string  `csv:"birth"`
	Death       string  `csv:"death"`
}

// Records flattens pairs into CSV rows in dimension order.
func Records(pairs [][]persistence.Pair) []*PairRecord {
	out := []*PairRecord{}
	for d, ps := range pairs {
		for _, p := range ps {
			out = append(out, &PairRecord{
				Dim:         d,
				BirthValue:  p.BirthValue,
				DeathValue:  p.DeathValue,
				Persistence: p.Persistence,
				Birth:       joinCoord(p.Birth),
				Death:       joinCoord(p.Death),
			})
		}
	}
	return out
}

// WriteCSV writes pairs as CSV with a header row.
func WriteCSV(w io.Writer, pairs [][]persistence.Pair) error {
	if err := gocsv.Marshal(Records(pairs), w); err != nil {
		return fmt.Errorf("pairio: writing csv: %w", err)
	}
	return nil
}

// ReadCSV parses rows written by WriteCSV back into pairs, grouped by
// dimension. dim is the grid dimension.
func ReadCSV(r io.Reader, dim int) ([][]persistence.Pair, error) {
	var records []*PairRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("pairio: reading csv: %w", err)
	}

	out := make([][]persistence.Pair, dim)
	for i, rec := range records {
		if rec.Dim < 0 || rec.Dim >= dim {
			return nil, fmt.Errorf("%w: row %d has dimension %d", ErrDimMismatch, i, rec.Dim)
		}
		b, err := splitCoord(rec.Birth, dim)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		e, err := splitCoord(rec.Death, dim)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[rec.Dim] = append(out[rec.Dim], persistence.Pair{
			Birth:       b,
			Death:       e,
			BirthValue:  rec.BirthValue,
			DeathValue:  rec.DeathValue,
			Persistence: rec.Persistence,
		})
	}
	return out, nil
}

func joinCoord(c field.Coord) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitCoord(s string, dim int) (field.Coord, error) {
	parts := strings.Fields(s)
	if len(parts) != dim {
		return nil, ErrDimMismatch
	}
	c := make(field.Coord, dim)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return nil, ErrBadCoordinate
		}
		c[i] = v
	}
	return c, nil
}
