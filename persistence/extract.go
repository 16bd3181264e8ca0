// SPDX-License-Identifier: MIT

package persistence

import (
	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/gf2"
	"github.com/katalvlaran/cubepers/invariant"
	"github.com/katalvlaran/cubepers/reduction"
)

// ExtractInput is the reduced state of one pass, upper dimension Dim.
type ExtractInput struct {
	Field    *field.Field
	Vertices []field.Coord // vertex filtration order
	Dim      int           // upper dimension d of the pass

	Low         []int // pivot map over (d-1)-cells
	LowerBirths []int // owner ranks of the (d-1)-cells
	UpperBirths []int // owner ranks of the d-cells
	Threshold   float64

	// Certificate inputs. When Certificates is false the fields below are
	// ignored and may be nil.
	Certificates bool
	Reductions   [][]int // per d-cell, from reduction.State
	Boundary     [][]int // reduced boundary matrix
	UpperCorners [][]int // cell2v of dimension d
	LowerCorners [][]int // cell2v of dimension d-1
}

// ExtractOutput holds the emitted pairs of dimension Dim-1.
type ExtractOutput struct {
	Pairs        []Pair
	Matched      int // all pivots, before thresholding
	Certificates Certificates
}

// Extract walks the pivot map in increasing row order and emits a Pair for
// every matched row whose persistence exceeds Threshold. Matched counts every
// pivot regardless of threshold.
//
// Returns ErrInputMismatch on inconsistent lengths, and an *invariant.Error
// for negative persistence or an empty certificate.
func Extract(in ExtractInput) (ExtractOutput, error) {
	if len(in.Low) != len(in.LowerBirths) {
		return ExtractOutput{}, ErrInputMismatch
	}
	if in.Certificates && (len(in.Reductions) != len(in.UpperBirths) ||
		len(in.Boundary) != len(in.UpperBirths)) {
		return ExtractOutput{}, ErrInputMismatch
	}

	var out ExtractOutput
	for i, j := range in.Low {
		if j == reduction.Unmatched {
			continue
		}
		if j < 0 || j >= len(in.UpperBirths) {
			return ExtractOutput{}, ErrInputMismatch
		}
		out.Matched++

		birth := in.Vertices[in.LowerBirths[i]]
		death := in.Vertices[in.UpperBirths[j]]
		bv, dv := in.Field.At(birth), in.Field.At(death)
		pers := dv - bv
		if pers < 0 {
			return ExtractOutput{}, invariant.New(invariant.KindNegativePersistence, in.Dim-1, i,
				"birth %v at %s, death %v at %s", bv, birth, dv, death)
		}
		if pers <= in.Threshold {
			continue
		}
		out.Pairs = append(out.Pairs, Pair{
			Birth:       birth.Clone(),
			Death:       death.Clone(),
			BirthValue:  bv,
			DeathValue:  dv,
			Persistence: pers,
		})

		if !in.Certificates {
			continue
		}
		red := cornerUnion(in.UpperCorners, in.Reductions[j])
		bnd := cornerUnion(in.LowerCorners, in.Boundary[j])
		if len(red) == 0 || len(bnd) == 0 {
			return ExtractOutput{}, invariant.New(invariant.KindEmptyCertificate, in.Dim, j,
				"reduction certificate %d vertices, boundary certificate %d vertices", len(red), len(bnd))
		}
		out.Certificates.Reduction = append(out.Certificates.Reduction, red)
		out.Certificates.Boundary = append(out.Certificates.Boundary, bnd)
	}

	return out, nil
}

// cornerUnion returns the sorted union of corners[c] over cells.
func cornerUnion(corners [][]int, cells []int) []int {
	if len(cells) == 1 {
		return gf2.Union(nil, corners[cells[0]])
	}
	var acc []int
	for _, c := range cells {
		acc = append(acc, corners[c]...)
	}
	return gf2.SortUnique(acc)
}
