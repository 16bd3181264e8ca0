// SPDX-License-Identifier: MIT

package persistence

// Flatten returns one row per emitted pair for numeric consumers:
//
//	[dim, birthValue, deathValue, persistence, birthCoord..., deathCoord...]
//
// Rows follow dimension order, then the order of r.Pairs[d].
func Flatten(r *Result) [][]float64 {
	rows := make([][]float64, 0, r.Total())
	for d, ps := range r.Pairs {
		for _, p := range ps {
			row := make([]float64, 0, 4+2*r.Dim)
			row = append(row, float64(d), p.BirthValue, p.DeathValue, p.Persistence)
			for _, x := range p.Birth {
				row = append(row, float64(x))
			}
			for _, x := range p.Death {
				row = append(row, float64(x))
			}
			rows = append(rows, row)
		}
	}
	return rows
}
