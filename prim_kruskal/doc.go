// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of the complete undirected graph described by a square distance matrix: Prim’s algorithm
// and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given n entities and pairwise distances d(i,j), an MST is a set of n-1 pairs that
//     connects every entity while the sum of the chosen distances is minimal.
//
//   - Why MST matters here:
//
//   - Connectivity threshold: the longest MST edge is the smallest distance t such that
//     linking every pair with d(i,j) <= t leaves no entity isolated. Neighborhood
//     weighting uses it as its default truncation distance.
//
//   - Clustering: cutting the largest MST edges splits the entities into groups.
//
// Graph Model
//
//   - Vertex i is row/column i of the matrix.
//   - Edge {i,j} (i != j) has weight d(j,i) for j > i (the lower triangle, as in a dist object).
//   - +Inf marks a missing edge; the diagonal is ignored.
//   - NaN or negative entries are rejected with ErrInvalidMatrix.
//
// Algorithms Provided
//
//   - Kruskal(d matrix.Matrix) ([]Edge, float64, error)
//
//   - Strategy: collect all finite pairs, stable-sort by weight, merge components
//     with a Disjoint-Set (Union-Find) and stop once n−1 edges have been added.
//
//   - Complexity: O(n² log n) time, O(n²) space.
//
//   - Determinism: pairs are gathered in row-major order and sorted stably, so ties break predictably.
//
//   - Prim(d matrix.Matrix, root int) ([]Edge, float64, error)
//
//   - Strategy: grow a single tree from root. A min-heap keeps candidate edges that
//     leave the tree; each step extracts the lightest one that reaches a new vertex.
//
//   - Complexity: O(n² log n) time, O(n²) heap storage in the worst case.
//
//   - Compute(d, MSTOptions) dispatches on MSTOptions.Method (MethodKruskal by default).
//
//   - EdgeDistances(d) returns just the MST edge weights; MaxEdge(edges) the longest one.
//
// Error Conditions
//
//	- ErrInvalidMatrix
//	    - d is nil, OR
//	    - d is not square, OR
//	    - an entry is NaN or negative.
//
//	- ErrRootOutOfRange (Prim only)
//	    - root is not in [0, n).
//
//	- ErrDisconnected
//	    - n == 0, OR
//	    - n > 1 but +Inf entries split the entities into several components.
//
//	- ErrUnknownMethod (Compute only)
//
// A 1×1 matrix yields an empty tree with total weight 0 and no error.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
