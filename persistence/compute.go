// SPDX-License-Identifier: MIT

package persistence

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/filtration"
	"github.com/katalvlaran/cubepers/invariant"
	"github.com/katalvlaran/cubepers/reduction"
)

// Compute runs the full pipeline on f and returns every pair whose
// persistence exceeds the threshold.
//
// Steps:
//  1. Build the cubical filtration (vertex order, owner ranks, cell numbers)
//     and, when enabled, verify the index order is a linear extension.
//  2. Build owner ranks and corner sets for every dimension, then drop the
//     rank lattice.
//  3. For d = n down to 1: build the boundary matrix of dimension d,
//     skipping columns cleared by the pass above; reduce it; extract the
//     (d-1)-pairs; hand certificates to the sink; keep only the clearing
//     flags for the next pass.
//  4. Check that matched pair counts telescope to the cell counts.
//
// Only one boundary matrix is alive at a time. Results are not sorted.
func Compute(f *field.Field, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	o := gatherOptions(opts)
	n := f.Dim()
	log := o.logger.With(zap.Int("grid_dim", n), zap.Ints("shape", f.Shape()))
	log.Info("persistence computation started", zap.Int("vertices", f.Size()),
		zap.Float64("threshold", o.threshold), zap.Bool("certificates", o.sink != nil))

	start := time.Now()
	c, err := filtration.New(f, filtration.WithLogger(log))
	if err != nil {
		return nil, err
	}
	vertices, err := c.Init(o.vertices)
	if err != nil {
		return nil, err
	}
	if o.checkOrder {
		if err = c.VerifyOrder(); err != nil {
			return nil, err
		}
	}

	counts := c.CellCounts()
	births := make([][]int, n+1)
	corners := make([][][]int, n+1)
	for d := 0; d <= n; d++ {
		b, cv, err := c.InitList(d)
		if err != nil {
			return nil, err
		}
		births[d] = b
		if o.sink != nil {
			corners[d] = cv
		}
	}
	c.ReleaseRanks()
	log.Debug("cell lists built", zap.Ints("cell_counts", counts))

	res := &Result{
		Dim:        n,
		Pairs:      make([][]Pair, n),
		Matched:    make([]int, n),
		CellCounts: counts,
		Vertices:   vertices,
	}

	var willBeCleared []bool
	var reduceTime time.Duration
	for d := n; d >= 1; d-- {
		boundary, err := c.CalculateBoundaries(d, willBeCleared)
		if err != nil {
			return nil, err
		}

		t := time.Now()
		st, err := reduction.Reduce(boundary, counts[d-1],
			reduction.WithLogger(log), reduction.WithDim(d))
		reduceTime += time.Since(t)
		if err != nil {
			return nil, err
		}

		out, err := Extract(ExtractInput{
			Field:        f,
			Vertices:     vertices,
			Dim:          d,
			Low:          st.Low,
			LowerBirths:  births[d-1],
			UpperBirths:  births[d],
			Threshold:    o.threshold,
			Certificates: o.sink != nil,
			Reductions:   st.Reductions,
			Boundary:     boundary,
			UpperCorners: corners[d],
			LowerCorners: corners[d-1],
		})
		if err != nil {
			return nil, err
		}
		res.Pairs[d-1] = out.Pairs
		res.Matched[d-1] = out.Matched

		if o.sink != nil {
			if err = o.sink.WriteCertificates(d, out.Certificates, vertices); err != nil {
				return nil, fmt.Errorf("persistence: writing certificates of dimension %d: %w", d, err)
			}
		}

		if d == 1 {
			ess, err := essential(f, vertices, st.Low)
			if err != nil {
				return nil, err
			}
			res.Essential = ess
		}

		log.Info("dimension reduced",
			zap.Int("dim", d-1),
			zap.Int("matched", out.Matched),
			zap.Int("emitted", len(out.Pairs)),
			zap.Int("additions", st.Additions),
		)
		willBeCleared = st.Clear
		births[d] = nil
		corners[d] = nil
	}

	if err = checkPairCounts(res.Matched, counts); err != nil {
		return nil, err
	}

	total := time.Since(start)
	res.Timing = Timing{Filtration: total - reduceTime, Reduction: reduceTime}
	log.Info("persistence computation finished",
		zap.Int("pairs", res.Total()),
		zap.Duration("filtration", res.Timing.Filtration),
		zap.Duration("reduction", res.Timing.Reduction),
	)

	return res, nil
}

// essential returns the single vertex that is not a pivot of any edge column.
func essential(f *field.Field, vertices []field.Coord, low []int) (Essential, error) {
	found := -1
	for i, j := range low {
		if j != reduction.Unmatched {
			continue
		}
		if found >= 0 {
			return Essential{}, invariant.New(invariant.KindPairCount, 0, i,
				"vertices %d and %d both unmatched", found, i)
		}
		found = i
	}
	if found < 0 {
		return Essential{}, invariant.New(invariant.KindPairCount, 0, -1, "no unmatched vertex")
	}
	v := vertices[found]
	return Essential{Coord: v.Clone(), Value: f.At(v)}, nil
}

// checkPairCounts verifies
//
//	matched[0] + 1        == counts[0]
//	matched[d-1]+matched[d] == counts[d]  for 1 ≤ d < n
//	matched[n-1]          == counts[n]
func checkPairCounts(matched, counts []int) error {
	n := len(matched)
	if matched[0]+1 != counts[0] {
		return invariant.New(invariant.KindPairCount, 0, -1,
			"%d vertex pairs for %d vertices", matched[0], counts[0])
	}
	for d := 1; d < n; d++ {
		if matched[d-1]+matched[d] != counts[d] {
			return invariant.New(invariant.KindPairCount, d, -1,
				"%d + %d pairs for %d cells", matched[d-1], matched[d], counts[d])
		}
	}
	if matched[n-1] != counts[n] {
		return invariant.New(invariant.KindPairCount, n, -1,
			"%d top pairs for %d top cells", matched[n-1], counts[n])
	}
	return nil
}
