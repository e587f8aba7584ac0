package neighborhood_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// hide wraps a Matrix so kernels cannot take the *Dense fast path.
type hide struct{ matrix.Matrix }

// line3 is the three-point transect used throughout: 0 —1— 1 —1— 2.
var line3 = [][]float64{
	{0, 1, 2},
	{1, 0, 1},
	{2, 1, 0},
}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireRows compares m cell by cell against want within tol.
// Infinite cells must match exactly.
func requireRows(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			if want[i][j] == got {
				continue
			}
			require.InDelta(t, want[i][j], got, tol, "cell (%d,%d)", i, j)
		}
	}
}

// randomDistances returns a symmetric n×n matrix with a zero diagonal and
// off-diagonal entries in [0, 10), some of them repeated.
func randomDistances(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v := float64(rng.Intn(40)) / 4
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}
