// SPDX-License-Identifier: MIT

package reduction

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/gf2"
	"github.com/katalvlaran/cubepers/invariant"
)

// Unmatched marks a row of Low that is not the pivot of any column.
const Unmatched = math.MaxInt32

// State is the outcome of reducing one boundary matrix.
type State struct {
	// Low maps a lower-dimension cell index to the column whose pivot it
	// is, or Unmatched.
	Low []int
	// Reductions holds, per column, the sorted set of original columns
	// whose sum is the reduced column. Empty for skipped columns.
	Reductions [][]int
	// Clear flags lower-dimension cells that became pivots; it is the
	// willBeCleared input of the next boundary computation.
	Clear []bool
	// Additions counts column additions performed.
	Additions int
}

// Pairs returns the number of matched rows.
func (s *State) Pairs() int {
	n := 0
	for _, j := range s.Low {
		if j != Unmatched {
			n++
		}
	}
	return n
}

// Reduce reduces boundary in place and returns the pivot state.
// boundary[i] must be a strictly ascending list of row indices in
// [0, lowerSize); after Reduce it holds the reduced column.
// Returns ErrNegativeSize, validation errors when enabled, or an
// *invariant.Error if a non-empty column cancels to zero.
func Reduce(boundary [][]int, lowerSize int, opts ...Option) (*State, error) {
	if lowerSize < 0 {
		return nil, ErrNegativeSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Validate {
		if err := validate(boundary, lowerSize); err != nil {
			return nil, err
		}
	}
	o.Logger.Debug("reducing columns", zap.Int("dim", o.Dim), zap.Int("columns", len(boundary)))

	s := &State{
		Low:        make([]int, lowerSize),
		Reductions: make([][]int, len(boundary)),
		Clear:      make([]bool, lowerSize),
	}
	for i := range s.Low {
		s.Low[i] = Unmatched
	}

	for i := range boundary {
		if len(boundary[i]) == 0 {
			continue
		}
		s.Reductions[i] = []int{i}

		low, _ := gf2.Low(boundary[i])
		for s.Low[low] != Unmatched {
			j := s.Low[low]
			boundary[i] = gf2.SymDiff(boundary[i], boundary[j])
			s.Reductions[i] = gf2.SymDiff(s.Reductions[i], s.Reductions[j])
			s.Additions++

			var ok bool
			if low, ok = gf2.Low(boundary[i]); !ok {
				return nil, invariant.New(invariant.KindColumnCancelled, o.Dim, i,
					"column reduced to zero after adding column %d", j)
			}
		}
		s.Low[low] = i
		s.Clear[low] = true
	}

	o.Logger.Debug("columns reduced",
		zap.Int("dim", o.Dim),
		zap.Int("pairs", s.Pairs()),
		zap.Int("additions", s.Additions))

	return s, nil
}

func validate(boundary [][]int, lowerSize int) error {
	for i, col := range boundary {
		if !gf2.IsSortedSet(col) {
			return fmt.Errorf("%w: column %d", ErrUnsortedColumn, i)
		}
		if len(col) > 0 && (col[0] < 0 || col[len(col)-1] >= lowerSize) {
			return fmt.Errorf("%w: column %d", ErrRowOutOfRange, i)
		}
	}
	return nil
}
