// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It treats a square distance matrix as a complete undirected graph and produces the MST edges.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the complete undirected graph
// described by the distance matrix d.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidMatrix : if d is nil, non-square, or holds a NaN/negative entry.
//   - ErrDisconnected  : if |V| == 0 or +Inf entries leave the graph disconnected.
//
// Steps:
//  1. Validate d; n = Rows(d). n==0 → ErrDisconnected; n==1 → trivial MST.
//  2. Collect every pair i<j with a finite lower-triangle weight.
//  3. Sort edges by ascending Weight (stable: ties keep (i,j) row-major order).
//  4. Initialize DSU slices parent[] and rank[].
//  5. Loop over sorted edges: if find(u) != find(v), union and include the edge.
//  6. Once MST has n-1 edges, break. Fewer than n-1 → ErrDisconnected.
//
// Complexity: O(n² log n) time, O(n²) memory for the edge list.
func Kruskal(d matrix.Matrix) ([]Edge, float64, error) {
	// 1. Validate the matrix.
	n, err := validateDistances(d)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Collect candidate edges in deterministic row-major order.
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w, ok := weight(d, i, j); ok {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	// 3. Sort edges by ascending weight.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Initialize disjoint-set structures; parent[v] = v.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(ru, rv int) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	// 5. Build MST by iterating over sorted edges.
	var (
		mst   = make([]Edge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue // would close a cycle
		}
		union(ru, rv)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 6. If MST does not contain exactly n-1 edges, the graph was disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
