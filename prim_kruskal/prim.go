// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It treats a square distance matrix as a complete undirected graph and grows the MST
// from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// Prim computes the Minimum Spanning Tree (MST) of the complete undirected graph
// described by d, growing outwards from vertex root using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidMatrix  : if d is nil, non-square, or holds a NaN/negative entry.
//   - ErrRootOutOfRange : if root is not in [0, n).
//   - ErrDisconnected   : if |V| == 0 or +Inf entries leave the graph disconnected.
//
// Steps:
//  1. Validate d and root.
//  2. Mark root visited and push every finite edge (root, j).
//  3. While pq not empty and MST has < n-1 edges:
//     a. Pop the smallest‐weight edge (u→v).
//     b. If v is already visited, skip (this edge would form a cycle).
//     c. Otherwise, add it, mark v visited, push edges from v to unvisited vertices.
//  4. If MST size < n-1 after loop → ErrDisconnected.
//
// Complexity: O(n² log n) time, O(n²) heap memory in the worst case.
func Prim(d matrix.Matrix, root int) ([]Edge, float64, error) {
	// 1. Validate the matrix and root.
	n, err := validateDistances(d)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Initialize visited set, MST container and heap.
	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	var total float64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u int) {
		for v := 0; v < n; v++ {
			if visited[v] || v == u {
				continue
			}
			if w, ok := weight(d, u, v); ok {
				heap.Push(pq, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	visited[root] = true
	push(root)

	// 3. Main loop: extract smallest edge and expand MST until we have n-1 edges.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		total += e.Weight
		push(e.To)
	}

	// 4. If we did not collect exactly n-1 edges, the graph must be disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// edgePQ implements heap.Interface for a min‐heap of Edge, ordered by Weight
// and then by (From, To) so equal weights pop deterministically.
type edgePQ []Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	if pq[i].From != pq[j].From {
		return pq[i].From < pq[j].From
	}

	return pq[i].To < pq[j].To
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

// Pop removes and returns the last element after heap adjustments. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
