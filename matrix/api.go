// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Each facade delegates to the canonical implementation.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
//
// AI-Hints: Useful for staging buffers (e.g., a connectivity mask for m).
func ZerosLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDenseWithOptions(m.Rows(), m.Cols(), opts...)
}
