// Package weightmatrix builds weighted neighborhood matrices for Moran's
// Eigenvector Maps (MEM) from pairwise distance matrices.
//
// What is a neighborhood matrix?
//
//	Given n entities and their n×n distance matrix D, the neighborhood matrix
//	W = A ⊙ B keeps only pairs closer than a threshold t (the connectivity
//	matrix B) and weights them (the edge-weight matrix A). Without an explicit
//	t, the longest edge of D's minimum spanning tree is used, so every entity
//	has at least one neighbor.
//
// Weighting methods:
//
//	dbmem         A = 1 - (D / 4t)²
//	linear        A = 1 - D / max(D)
//	concave-down  A = 1 - (D / max(D))^α
//	concave-up    A = 1 / D^β
//	connectivity  A = B
//
// Packages:
//
//	matrix/          dense float64 matrix, numeric policy, validators, elementwise kernels
//	prim_kruskal/    minimum spanning tree (Prim, Kruskal) over a distance matrix
//	neighborhood/    the weighter: threshold, B, A, W and diagnostics
//	cmd/weightmatrix command line front end (compute, threshold)
//
// Quick example (three points on a line, one unit apart):
//
//	d, _ := matrix.NewDenseFromRows([][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}})
//	w, _ := neighborhood.Compute(d, neighborhood.MethodLinear, neighborhood.WithThreshold(2))
//	fmt.Print(w)
//	// [0, 0.5, 0]
//	// [0.5, 0, 0.5]
//	// [0, 0.5, 0]
//
//	go install github.com/katalvlaran/weightmatrix/cmd/weightmatrix@latest
package weightmatrix
