// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// --- HadamardMasked ----------------------------------------------------------

func TestHadamardMasked_ZeroAnnihilatesInf(t *testing.T) {
	t.Parallel()

	A, err := matrix.NewDenseWithOptions(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	MustSet(t, A, 0, 0, math.Inf(1))
	MustSet(t, A, 0, 1, math.Inf(-1))
	MustSet(t, A, 1, 0, 0.25)
	MustSet(t, A, 1, 1, math.NaN())
	mask := NewFilledDense(t, 2, 2, []float64{1, 0, 1, 0})

	for _, operand := range []matrix.Matrix{A, hide{A}} {
		got, err := matrix.HadamardMasked(operand, mask, matrix.WithAllowInfDistances())
		require.NoError(t, err)
		require.True(t, math.IsInf(MustAt(t, got, 0, 0), 1))
		require.Equal(t, 0.0, MustAt(t, got, 0, 1))
		require.Equal(t, 0.25, MustAt(t, got, 1, 0))
		require.Equal(t, 0.0, MustAt(t, got, 1, 1))
	}

	_, err = matrix.HadamardMasked(A, mask)
	require.ErrorIs(t, err, matrix.ErrNaNInf, "default policy rejects the surviving +Inf")
}

func TestHadamardMasked_DimMismatch_Err(t *testing.T) {
	t.Parallel()

	_, err := matrix.HadamardMasked(MustDense(t, 2, 3), MustDense(t, 3, 2))
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	_, err = matrix.HadamardMasked(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- Map / Max ---------------------------------------------------------------

func TestMap_FreshResult(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 3})
	for _, src := range []matrix.Matrix{X, hide{X}} {
		got, err := matrix.Map(src, func(i, j int, v float64) float64 { return v*v + float64(i) })
		require.NoError(t, err)
		CompareExact(t, [][]float64{{0, 1}, {5, 10}}, got)
	}
	CompareExact(t, [][]float64{{0, 1}, {2, 3}}, X)

	_, err := matrix.Map(X, func(_, _ int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Map(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMax(t *testing.T) {
	t.Parallel()

	got, err := matrix.Max(NewFilledDense(t, 2, 2, []float64{0, 3, -7, 2}))
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	allNaN, err := matrix.NewDenseWithOptions(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	MustSet(t, allNaN, 0, 0, math.NaN())
	MustSet(t, allNaN, 0, 1, math.NaN())
	_, err = matrix.Max(allNaN)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// --- FillDiagonal ------------------------------------------------------------

func TestFillDiagonal(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, matrix.FillDiagonal(m, 0))
	CompareExact(t, [][]float64{{0, 2}, {3, 0}}, m)

	require.ErrorIs(t, matrix.FillDiagonal(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
}
