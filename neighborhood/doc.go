// SPDX-License-Identifier: MIT

// Package neighborhood turns a pairwise distance matrix into a weighted
// neighborhood matrix for Moran's Eigenvector Map (MEM) analysis.
//
// Given an n×n distance matrix D (spatial, temporal or phylogenetic), the
// Weighter builds:
//
//   - B, the connectivity matrix: B[i,j] = 1 if D[i,j] <= t, else 0.
//     Entries exactly at t stay connected.
//   - A, the edge-weight matrix, according to Method:
//     dbmem         A = 1 - (D/(4t))^2
//     linear        A = 1 - D/max(D)
//     concave-down  A = 1 - (D/max(D))^alpha
//     concave-up    A = 1 / D^beta
//     connectivity  A = B
//   - W = A ⊙ B, with the diagonal forced to zero unless WithZeroDiagonal(false).
//
// The threshold t is either supplied (WithThreshold) or taken as the longest
// edge of a minimum spanning tree of D. The spanning tree is an injected
// strategy (SpanningTreeFunc); prim_kruskal.EdgeDistances is the default.
//
// Errors are detected before any matrix is allocated and are reported with
// the sentinels in errors.go (match them with errors.Is). Numeric
// degeneracies are not errors: concave-up yields +Inf where D is 0, and a
// threshold of 0 may leave every entity isolated. Diagnose reports both.
//
// Example:
//
//	d, _ := matrix.NewDenseFromRows([][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}})
//	w, err := neighborhood.Compute(d, neighborhood.MethodLinear, neighborhood.WithThreshold(1))
//	// w = [[0 .5 0] [.5 0 .5] [0 .5 0]]
//
// The package is pure: it never logs, keeps no global state and never
// mutates D. A Weighter may be shared between goroutines.
package neighborhood
