// Package cubepers computes persistent homology of scalar fields sampled on
// regular n-dimensional grids, using the lower-star filtration of the cubical
// complex over the grid.
//
// Every grid vertex carries a value. Cells (vertices, edges, squares, cubes
// and their higher analogues) enter the filtration with the largest value of
// their corner vertices; the library reduces the boundary matrices over GF(2)
// and reports, per homological dimension, the (birth, death) pairs whose
// persistence exceeds a threshold, optionally with certificates tying each
// pair back to the grid vertices that realise it.
//
// Packages:
//
//	field/        the scalar grid, coordinates and volume file readers
//	filtration/   extended lattice, vertex order, cell numbering, boundary matrices
//	reduction/    GF(2) column reduction with clearing
//	persistence/  pair extraction, certificates and the Compute pipeline
//	pairio/       binary, text and CSV writers/readers, certificate file sink
//	gf2/          sorted-list set algebra shared by the above
//	invariant/    structured errors for violated algorithm invariants
//	cmd/cubepers  command-line front end
//
// Quick example:
//
//	    0 0 0
//	    0 5 0     one loop (H1) born at 0, killed at 5 when the centre fills in
//	    0 0 0
//
//	f, _ := field.From2D(rows)
//	res, err := persistence.Compute(f, persistence.WithThreshold(0))
//
// Dimension 0 always has one essential class born at the global minimum;
// it is reported as Result.Essential rather than as a pair.
package cubepers
