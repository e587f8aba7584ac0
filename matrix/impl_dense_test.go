// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies the reported dimensions.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestNumericPolicy covers the three policy modes of Dense.Set.
func TestNumericPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	posInf, err := matrix.NewDenseWithOptions(1, 1, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	require.NoError(t, posInf.Set(0, 0, math.Inf(1)))
	require.ErrorIs(t, posInf.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, posInf.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWithOptions(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
	require.NoError(t, loose.Set(0, 0, math.NaN()))
}

// TestCloneIndependence checks deep copy and preserved policy.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	src, err := matrix.NewDenseWithOptions(2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	MustSet(t, src, 0, 1, 3)

	cp := src.Clone()
	MustSet(t, cp, 0, 1, 9)
	require.Equal(t, 3.0, MustAt(t, src, 0, 1))
	require.NoError(t, cp.Set(1, 1, math.Inf(1)), "clone must keep the +Inf policy")
}

// TestNewDenseFromRows covers copying, ragged rows and policy rejection.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 1}, {1, 0}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	rows[0][1] = 42
	CompareExact(t, [][]float64{{0, 1}, {1, 0}}, m)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, m.ToRows())

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestApply checks in-place mapping and policy enforcement.
func TestApply(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, m)

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestString renders rows deterministically.
func TestString(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{0, 0.5, 0.5, 0})
	require.Equal(t, "[0, 0.5]\n[0.5, 0]\n", m.String())
}

// TestZerosLike allocates a same-shaped zero matrix.
func TestZerosLike(t *testing.T) {
	src := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	z, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	inf, err := matrix.ZerosLike(src, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	require.NoError(t, inf.Set(0, 0, math.Inf(1)), "opts set the policy of the new matrix")
}
