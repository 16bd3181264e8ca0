// SPDX-License-Identifier: MIT

package persistence_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/filtration"
	"github.com/katalvlaran/cubepers/invariant"
	"github.com/katalvlaran/cubepers/persistence"
	"github.com/katalvlaran/cubepers/reduction"
)

// ComputeSuite groups end-to-end tests of Compute.
type ComputeSuite struct {
	suite.Suite
	opts []persistence.Option
}

func (s *ComputeSuite) SetupTest() {
	s.opts = []persistence.Option{persistence.WithLogger(zaptest.NewLogger(s.T()))}
}

func (s *ComputeSuite) compute(f *field.Field, extra ...persistence.Option) *persistence.Result {
	res, err := persistence.Compute(f, append(slices.Clone(s.opts), extra...)...)
	require.NoError(s.T(), err)
	return res
}

// TestLine: [0,3,1,2] has one finite H0 pair, born at value 1 and killed by
// the edge reaching the peak.
func (s *ComputeSuite) TestLine() {
	f, err := field.From1D([]float64{0, 3, 1, 2})
	require.NoError(s.T(), err)

	res := s.compute(f)
	want := [][]persistence.Pair{{
		{Birth: field.Coord{2}, Death: field.Coord{1}, BirthValue: 1, DeathValue: 3, Persistence: 2},
	}}
	require.Empty(s.T(), cmp.Diff(want, res.Pairs))
	require.Equal(s.T(), []int{4, 3}, res.CellCounts)
	require.Equal(s.T(), []int{3}, res.Matched)
	require.Equal(s.T(), persistence.Essential{Coord: field.Coord{0}, Value: 0}, res.Essential)
	require.Empty(s.T(), cmp.Diff([]field.Coord{{0}, {2}, {3}, {1}}, res.Vertices))
}

// TestCorner2x2: a monotone 2x2 grid pairs every cell with zero persistence.
func (s *ComputeSuite) TestCorner2x2() {
	f, err := field.From2D([][]float64{{0, 1}, {2, 3}})
	require.NoError(s.T(), err)

	res := s.compute(f)
	require.Equal(s.T(), 0, res.Total())
	require.Equal(s.T(), []int{4, 4, 1}, res.CellCounts)
	require.Equal(s.T(), []int{3, 1}, res.Matched)
	require.Equal(s.T(), field.Coord{0, 0}, res.Essential.Coord)
	require.Equal(s.T(), 0.0, res.Essential.Value)
}

// TestRing: a 3x3 plateau with a raised centre carries one loop from 0 to 5.
func (s *ComputeSuite) TestRing() {
	f, err := field.From2D([][]float64{
		{0, 0, 0},
		{0, 5, 0},
		{0, 0, 0},
	})
	require.NoError(s.T(), err)

	res := s.compute(f)
	require.Empty(s.T(), res.Pairs[0])
	want := []persistence.Pair{
		{Birth: field.Coord{2, 2}, Death: field.Coord{1, 1}, BirthValue: 0, DeathValue: 5, Persistence: 5},
	}
	require.Empty(s.T(), cmp.Diff(want, res.Pairs[1]))
	require.Equal(s.T(), []int{9, 12, 4}, res.CellCounts)
	require.Equal(s.T(), []int{8, 4}, res.Matched)
}

// TestShell: a 3x3x3 plateau with a raised centre encloses one void.
func (s *ComputeSuite) TestShell() {
	vol := make([][][]float64, 3)
	for i := range vol {
		vol[i] = make([][]float64, 3)
		for j := range vol[i] {
			vol[i][j] = make([]float64, 3)
		}
	}
	vol[1][1][1] = 5
	f, err := field.From3D(vol)
	require.NoError(s.T(), err)

	res := s.compute(f)
	require.Empty(s.T(), res.Pairs[0])
	require.Empty(s.T(), res.Pairs[1])
	want := []persistence.Pair{
		{Birth: field.Coord{2, 2, 2}, Death: field.Coord{1, 1, 1}, BirthValue: 0, DeathValue: 5, Persistence: 5},
	}
	require.Empty(s.T(), cmp.Diff(want, res.Pairs[2]))
	require.Equal(s.T(), []int{27, 54, 36, 8}, res.CellCounts)
}

// TestFlatDeterministic: a constant field yields no pairs, twice identically.
func (s *ComputeSuite) TestFlatDeterministic() {
	f, err := field.FromFlat([]int{3, 4}, make([]float64, 12))
	require.NoError(s.T(), err)

	a := s.compute(f)
	b := s.compute(f)
	require.Equal(s.T(), 0, a.Total())
	require.Empty(s.T(), cmp.Diff(a, b, cmpopts.IgnoreFields(persistence.Result{}, "Timing")))
}

// TestThreshold: a threshold above every persistence empties the diagrams
// but leaves the matched counts untouched.
func (s *ComputeSuite) TestThreshold() {
	f := randomField(s.T(), rand.New(rand.NewSource(7)), []int{6, 5})
	low := s.compute(f)
	high := s.compute(f, persistence.WithThreshold(1e9))

	require.Equal(s.T(), 0, high.Total())
	require.Equal(s.T(), low.Matched, high.Matched)

	mid := s.compute(f, persistence.WithThreshold(0.5))
	for d := range mid.Pairs {
		for _, p := range mid.Pairs[d] {
			require.Greater(s.T(), p.Persistence, 0.5)
		}
		require.LessOrEqual(s.T(), len(mid.Pairs[d]), len(low.Pairs[d]))
	}
}

// TestRandomFields: counts telescope (checked inside Compute), values are
// consistent with coordinates and H0 matches a union-find sweep.
func (s *ComputeSuite) TestRandomFields() {
	rng := rand.New(rand.NewSource(42))
	shapes := [][]int{{9}, {1, 7}, {4, 6}, {5, 5}, {3, 4, 3}, {2, 2, 2, 2}}
	for _, shape := range shapes {
		f := randomField(s.T(), rng, shape)
		res := s.compute(f)

		require.Len(s.T(), res.Pairs, len(shape))
		for _, ps := range res.Pairs {
			for _, p := range ps {
				require.Greater(s.T(), p.Persistence, 0.0)
				require.Equal(s.T(), f.At(p.Birth), p.BirthValue)
				require.Equal(s.T(), f.At(p.Death), p.DeathValue)
				require.Equal(s.T(), p.DeathValue-p.BirthValue, p.Persistence)
			}
		}
		require.Empty(s.T(), cmp.Diff(unionFindH0(f), values(res.Pairs[0])), "shape %v", shape)
		require.Equal(s.T(), slices.Min(valuesOf(f)), res.Essential.Value)
	}
}

// TestVertexList: an explicit order equal to the default gives the same result.
func (s *ComputeSuite) TestVertexList() {
	f, err := field.From1D([]float64{0, 3, 1, 2})
	require.NoError(s.T(), err)

	res := s.compute(f, persistence.WithVertexList([]field.Coord{{0}, {2}, {3}, {1}}))
	require.Len(s.T(), res.Pairs[0], 1)

	_, err = persistence.Compute(f, persistence.WithVertexList([]field.Coord{{0}, {0}, {3}, {1}}))
	require.ErrorIs(s.T(), err, filtration.ErrVertexList)
}

// TestCertificates: the line's single pair carries both certificates.
func (s *ComputeSuite) TestCertificates() {
	f, err := field.From1D([]float64{0, 3, 1, 2})
	require.NoError(s.T(), err)

	sink := &recordSink{}
	s.compute(f, persistence.WithCertificateSink(sink))
	require.Equal(s.T(), []int{1}, sink.dims)
	require.Equal(s.T(), [][]int{{0, 1, 3}}, sink.certs[0].Reduction)
	require.Equal(s.T(), [][]int{{0, 1}}, sink.certs[0].Boundary)
	require.Equal(s.T(), field.Coord{1}, sink.vertices[3])

	shell := &recordSink{}
	g := randomField(s.T(), rand.New(rand.NewSource(3)), []int{4, 4, 3})
	res := s.compute(g, persistence.WithCertificateSink(shell))
	require.Equal(s.T(), []int{3, 2, 1}, shell.dims)
	for i, d := range shell.dims {
		require.Len(s.T(), shell.certs[i].Reduction, len(res.Pairs[d-1]))
		require.Len(s.T(), shell.certs[i].Boundary, len(res.Pairs[d-1]))
	}
}

// TestSinkError: a failing sink aborts the run with its error wrapped.
func (s *ComputeSuite) TestSinkError() {
	f, err := field.From1D([]float64{0, 3, 1, 2})
	require.NoError(s.T(), err)

	boom := errors.New("disk full")
	_, err = persistence.Compute(f, persistence.WithCertificateSink(&recordSink{err: boom}))
	require.ErrorIs(s.T(), err, boom)
}

func (s *ComputeSuite) TestNilField() {
	_, err := persistence.Compute(nil)
	require.ErrorIs(s.T(), err, persistence.ErrNilField)
}

// TestSingleVertex: a 1-voxel grid has only the essential class.
func (s *ComputeSuite) TestSingleVertex() {
	f, err := field.From1D([]float64{4})
	require.NoError(s.T(), err)

	res := s.compute(f)
	require.Equal(s.T(), 0, res.Total())
	require.Equal(s.T(), 4.0, res.Essential.Value)
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeSuite))
}

func TestWithThresholdPanics(t *testing.T) {
	require.Panics(t, func() { persistence.WithThreshold(-1) })
	require.NotPanics(t, func() { persistence.WithThreshold(0) })
}

func TestExtractNegativePersistence(t *testing.T) {
	_, err := persistence.Extract(persistence.ExtractInput{
		Field:       mustLine(t, 5, 1),
		Vertices:    []field.Coord{{1}, {0}},
		Dim:         1,
		Low:         []int{reduction.Unmatched, 0},
		LowerBirths: []int{0, 1},
		// the killing edge is claimed by the lower vertex
		UpperBirths: []int{0},
	})
	var ie *invariant.Error
	require.ErrorAs(t, err, &ie)
	require.Equal(t, invariant.KindNegativePersistence, ie.Kind)
}

type recordSink struct {
	dims     []int
	certs    []persistence.Certificates
	vertices []field.Coord
	err      error
}

func (r *recordSink) WriteCertificates(d int, c persistence.Certificates, v []field.Coord) error {
	if r.err != nil {
		return r.err
	}
	r.dims = append(r.dims, d)
	r.certs = append(r.certs, persistence.Certificates{
		Reduction: slices.Clone(c.Reduction),
		Boundary:  slices.Clone(c.Boundary),
	})
	r.vertices = v
	return nil
}

func mustLine(t *testing.T, vals ...float64) *field.Field {
	t.Helper()
	f, err := field.From1D(vals)
	require.NoError(t, err)
	return f
}

// randomField fills shape with a permutation so all values are distinct.
func randomField(t *testing.T, rng *rand.Rand, shape []int) *field.Field {
	t.Helper()
	n := 1
	for _, s := range shape {
		n *= s
	}
	vals := make([]float64, n)
	for i, p := range rng.Perm(n) {
		vals[i] = float64(p)
	}
	f, err := field.FromFlat(shape, vals)
	require.NoError(t, err)
	return f
}

func valuesOf(f *field.Field) []float64 {
	out := make([]float64, f.Size())
	for i := range out {
		out[i] = f.AtIndex(i)
	}
	return out
}

// values returns sorted (birth, death) value pairs.
func values(ps []persistence.Pair) [][2]float64 {
	out := make([][2]float64, 0, len(ps))
	for _, p := range ps {
		out = append(out, [2]float64{p.BirthValue, p.DeathValue})
	}
	slices.SortFunc(out, cmpValuePair)
	return out
}

func cmpValuePair(a, b [2]float64) int {
	if a[0] != b[0] {
		if a[0] < b[0] {
			return -1
		}
		return 1
	}
	switch {
	case a[1] < b[1]:
		return -1
	case a[1] > b[1]:
		return 1
	}
	return 0
}

// unionFindH0 sweeps vertices by value, merging axis neighbours; the
// component with the larger minimum dies when two meet.
func unionFindH0(f *field.Field) [][2]float64 {
	coords := f.Coords()
	slices.SortStableFunc(coords, func(a, b field.Coord) int {
		va, vb := f.At(a), f.At(b)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	})

	parent := make([]int, f.Size())
	minVal := make([]float64, f.Size())
	added := make([]bool, f.Size())
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	out := [][2]float64{}
	shape := f.Shape()
	for _, c := range coords {
		v := f.Index(c)
		parent[v], minVal[v], added[v] = v, f.At(c), true
		for axis := range shape {
			for _, step := range []int{-1, 1} {
				nb := c.Clone()
				nb[axis] += step
				if !f.InBounds(nb) || !added[f.Index(nb)] {
					continue
				}
				ra, rb := find(v), find(f.Index(nb))
				if ra == rb {
					continue
				}
				if minVal[ra] < minVal[rb] {
					ra, rb = rb, ra
				}
				// ra is the younger component
				if minVal[ra] < f.At(c) {
					out = append(out, [2]float64{minVal[ra], f.At(c)})
				}
				parent[ra] = rb
			}
		}
	}
	slices.SortFunc(out, cmpValuePair)
	return out
}

func BenchmarkCompute2D(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]float64, 64*64)
	for i := range vals {
		vals[i] = rng.Float64()
	}
	f, err := field.FromFlat([]int{64, 64}, vals)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := persistence.Compute(f); err != nil {
			b.Fatal(err)
		}
	}
}
