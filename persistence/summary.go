// SPDX-License-Identifier: MIT

package persistence

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the persistence values of one diagram.
type Summary struct {
	Count  int
	Total  float64
	Mean   float64
	StdDev float64 // sample standard deviation, 0 for fewer than two pairs
	Max    float64
}

// Summarize returns statistics of pairs' persistence. Empty input yields the
// zero Summary.
func Summarize(pairs []Pair) Summary {
	if len(pairs) == 0 {
		return Summary{}
	}
	pers := make([]float64, len(pairs))
	for i, p := range pairs {
		pers[i] = p.Persistence
	}

	s := Summary{
		Count: len(pers),
		Total: floats.Sum(pers),
		Max:   floats.Max(pers),
	}
	if len(pers) == 1 {
		s.Mean = pers[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(pers, nil)

	return s
}

// SummarizeAll returns one Summary per dimension of r.
func SummarizeAll(r *Result) []Summary {
	out := make([]Summary, len(r.Pairs))
	for d, ps := range r.Pairs {
		out[d] = Summarize(ps)
	}
	return out
}
