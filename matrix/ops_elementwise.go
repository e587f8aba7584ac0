// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels used to assemble neighborhood matrices:
//     HadamardMasked, Map, Max, FillDiagonal.
//   - Dense fast-paths operate on flat row-major buffers; a generic At/Set
//     fallback keeps every Matrix implementation usable.
//
// Determinism & Performance:
//   - Fixed i→j traversal (or flat 0..r*c-1 on fast-paths).
//   - One allocation per call for the result; operands are never mutated
//     (FillDiagonal is the documented in-place exception).

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opHadamardMasked = "HadamardMasked"
	opMap            = "Map"
	opMax            = "Max"
	opFillDiagonal   = "FillDiagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// HadamardMasked computes out[i,j] = a[i,j]*mask[i,j] where mask[i,j] != 0,
// and exactly 0 where mask[i,j] == 0, with a fresh Dense result.
// MAIN DESCRIPTION:
//   - Hadamard product in which a zero mask cell annihilates any a value,
//     including ±Inf and NaN, instead of yielding NaN.
//
// Inputs:
//   - a   : values (may hold ±Inf).
//   - mask: weights or a 0/1 connectivity mask, same shape as a.
//   - opts: numeric policy of the result (e.g., WithAllowInfDistances).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrNaNInf when a surviving product violates the result's policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func HadamardMasked(a, mask Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateBinarySameShape(a, mask); err != nil {
		return nil, matrixErrorf(opHadamardMasked, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDenseWithOptions(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opHadamardMasked, err)
	}

	if da, okA := a.(*Dense); okA {
		if dm, okM := mask.(*Dense); okM {
			var n, idx int
			var mv, v float64
			n = rows * cols
			for idx = 0; idx < n; idx++ {
				mv = dm.data[idx]
				if mv == 0 {
					continue // buffer is zero-initialized
				}
				v = da.data[idx] * mv
				if res.policy.rejects(v) {
					return nil, matrixErrorf(opHadamardMasked, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
				}
				res.data[idx] = v
			}

			return res, nil
		}
	}

	var i, j int
	var av, mv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = mask.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamardMasked, err)
			}
			if mv == 0 {
				continue
			}
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamardMasked, err)
			}
			if err = res.Set(i, j, av*mv); err != nil {
				return nil, matrixErrorf(opHadamardMasked, err)
			}
		}
	}

	return res, nil
}

// Map returns a fresh Dense with out[i,j] = f(i, j, m[i,j]).
// The numeric policy of the result comes from opts; m is not mutated.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when f yields a value the policy rejects.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Fuse several elementwise transforms into one f to save passes.
func Map(m Matrix, f func(i, j int, v float64) float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDenseWithOptions(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	var i, j, base int
	var v, nv float64
	src, fast := m.(*Dense)
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if fast {
				v = src.data[base+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMap, err)
			}
			nv = f(i, j, v)
			if res.policy.rejects(nv) {
				return nil, matrixErrorf(opMap, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[base+j] = nv
		}
	}

	return res, nil
}

// Max returns the largest entry of m. NaN entries are skipped; a matrix made
// only of NaN yields ErrNaNInf.
// Complexity: O(r*c).
func Max(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMax, err)
	}

	best := math.Inf(-1)
	seen := false
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			if !seen || v > best {
				best, seen = v, true
			}
		}
	}
	if !seen {
		return 0, matrixErrorf(opMax, ErrNaNInf)
	}

	return best, nil
}

// FillDiagonal sets m[i,i] = v for every i, in place.
// Requires a square, non-nil matrix.
// Complexity: O(n).
func FillDiagonal(m Matrix, v float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opFillDiagonal, err)
	}
	for i := 0; i < m.Rows(); i++ {
		if err := m.Set(i, i, v); err != nil {
			return matrixErrorf(opFillDiagonal, err)
		}
	}

	return nil
}
