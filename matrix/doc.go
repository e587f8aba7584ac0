// Package matrix provides the dense numeric storage used by the neighborhood
// weighting pipeline.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major float64 implementation with a per-instance numeric
//     policy (reject NaN/±Inf, or admit +Inf for "infinitely close" weights).
//   - Validators for distance matrices: square, finite, non-negative,
//     symmetric within eps, zero diagonal.
//   - Elementwise kernels: HadamardMasked (0 annihilates ±Inf), Map, Max
//     and FillDiagonal, plus ZerosLike for staging buffers.
//
// Every kernel allocates a fresh result and never mutates its operands,
// except FillDiagonal and Dense.Apply which are documented as in-place.
// Loop orders are fixed (row-major i→j) so results are reproducible.
package matrix
