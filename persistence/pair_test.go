// SPDX-License-Identifier: MIT

package persistence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/persistence"
)

func pair(b, d float64) persistence.Pair {
	return persistence.Pair{
		Birth: field.Coord{0}, Death: field.Coord{1},
		BirthValue: b, DeathValue: d, Persistence: d - b,
	}
}

func TestPairLess(t *testing.T) {
	assert.True(t, pair(0, 5).Less(pair(0, 2)), "more persistent first")
	assert.False(t, pair(0, 2).Less(pair(0, 5)))
	assert.True(t, pair(1, 4).Less(pair(2, 5)), "ties by lower birth")
	assert.False(t, pair(1, 4).Less(pair(1, 4)), "irreflexive")
}

func TestSortPairs(t *testing.T) {
	ps := []persistence.Pair{pair(3, 4), pair(0, 5), pair(2, 5), pair(1, 4), pair(0, 1)}
	persistence.SortPairs(ps)

	var got [][2]float64
	for _, p := range ps {
		got = append(got, [2]float64{p.BirthValue, p.DeathValue})
	}
	want := [][2]float64{{0, 5}, {1, 4}, {2, 5}, {0, 1}, {3, 4}}
	require.Equal(t, want, got)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, persistence.Summary{}, persistence.Summarize(nil))

	one := persistence.Summarize([]persistence.Pair{pair(1, 3)})
	assert.Equal(t, persistence.Summary{Count: 1, Total: 2, Mean: 2, Max: 2}, one)

	s := persistence.Summarize([]persistence.Pair{pair(0, 1), pair(0, 3), pair(1, 6)})
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 9.0, s.Total, 1e-12)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 5.0, s.Max, 1e-12)
	// sample variance of {1,3,5} is 4
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)
	assert.False(t, math.IsNaN(s.StdDev))
}

func TestFlatten(t *testing.T) {
	r := &persistence.Result{
		Dim: 2,
		Pairs: [][]persistence.Pair{
			nil,
			{{Birth: field.Coord{2, 2}, Death: field.Coord{1, 1}, BirthValue: 0, DeathValue: 5, Persistence: 5}},
		},
	}
	require.Equal(t, [][]float64{{1, 0, 5, 5, 2, 2, 1, 1}}, persistence.Flatten(r))
	require.Len(t, persistence.SummarizeAll(r), 2)
	require.Equal(t, 1, persistence.SummarizeAll(r)[1].Count)
}
