package field_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubepers/field"
)

//----------------------------------------------------------------------------//
// Constructor Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, oversized, mismatched and non-finite inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		shape  []int
		values []float64
		err    error
	}{
		{"NoAxes", nil, nil, field.ErrEmptyGrid},
		{"ZeroAxis", []int{2, 0}, nil, field.ErrEmptyGrid},
		{"TooManyAxes", []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, []float64{0}, field.ErrDimTooLarge},
		{"Mismatch", []int{2, 2}, []float64{1, 2, 3}, field.ErrShapeMismatch},
		{"NaN", []int{2}, []float64{1, math.NaN()}, field.ErrNaNInf},
		{"Inf", []int{1}, []float64{math.Inf(1)}, field.ErrNaNInf},
		{"Overflow", []int{1 << 32, 1 << 32}, nil, field.ErrGridTooLarge},
		{"AboveMaxVoxels", []int{1 << 16, 1 << 16}, nil, field.ErrGridTooLarge},
		{"WrapsToSmall", []int{1 << 62, 4, 3}, []float64{0, 1, 2}, field.ErrGridTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.New(tc.shape, tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.shape, err, tc.err)
			}
		})
	}
}

// TestFrom2D_Errors mirrors the rectangular checks of the nested constructors.
func TestFrom2D_Errors(t *testing.T) {
	_, err := field.From2D(nil)
	require.ErrorIs(t, err, field.ErrEmptyGrid)
	_, err = field.From2D([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, field.ErrNonRectangular)
	_, err = field.From3D([][][]float64{{{1}, {2}}, {{3}}})
	require.ErrorIs(t, err, field.ErrNonRectangular)
	_, err = field.From1D(nil)
	require.ErrorIs(t, err, field.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Indexing Tests
//----------------------------------------------------------------------------//

// TestIndexing checks row-major layout on a 2×3 grid.
//
//	0 1 2
//	3 4 5
func TestIndexing(t *testing.T) {
	f, err := field.From2D([][]float64{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	assert.Equal(t, 2, f.Dim())
	assert.Equal(t, 6, f.Size())
	assert.Equal(t, []int{2, 3}, f.Shape())

	for i := 0; i < f.Size(); i++ {
		c := f.Coordinate(i)
		assert.Equal(t, i, f.Index(c))
		assert.Equal(t, float64(i), f.At(c))
		assert.Equal(t, float64(i), f.AtIndex(i))
	}
	assert.Equal(t, field.Coord{1, 2}, f.Coordinate(5))
}

// TestInBounds checks valid and invalid coordinates, including wrong arity.
func TestInBounds(t *testing.T) {
	f, err := field.From2D([][]float64{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	valid := []field.Coord{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		assert.True(t, f.InBounds(c), "InBounds%v", c)
	}
	invalid := []field.Coord{{-1, 0}, {2, 0}, {0, 3}, {0}, {0, 0, 0}}
	for _, c := range invalid {
		assert.False(t, f.InBounds(c), "InBounds%v", c)
	}
}

// TestCoords_RowMajor checks that enumeration order is row-major, last axis fastest.
func TestCoords_RowMajor(t *testing.T) {
	f, err := field.From3D([][][]float64{
		{{0, 1}, {2, 3}},
		{{4, 5}, {6, 7}},
	})
	require.NoError(t, err)

	coords := f.Coords()
	require.Len(t, coords, 8)
	assert.Equal(t, field.Coord{0, 0, 0}, coords[0])
	assert.Equal(t, field.Coord{0, 0, 1}, coords[1])
	assert.Equal(t, field.Coord{0, 1, 0}, coords[2])
	assert.Equal(t, field.Coord{1, 1, 1}, coords[7])
	for i, c := range coords {
		assert.Equal(t, float64(i), f.At(c))
	}
}

// TestCoord_Helpers covers Clone and String.
func TestCoord_Helpers(t *testing.T) {
	c := field.Coord{1, 2, 3}
	d := c.Clone()
	d[0] = 9
	assert.Equal(t, 1, c[0])
	assert.Equal(t, 9, d[0])
	assert.Equal(t, "(1,2,3)", c.String())
}
