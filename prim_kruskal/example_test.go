package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/weightmatrix/matrix"
	"github.com/katalvlaran/weightmatrix/prim_kruskal"
)

// ExampleKruskal_Triangle demonstrates Kruskal’s algorithm on a triangle.
// Distances: A—B (1), B—C (2), A—C (4). The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal_triangle() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})

	edges, total, err := prim_kruskal.Kruskal(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: 0-1 1-2
}

// ExamplePrim_Pentagon demonstrates Prim’s algorithm on a 5‐vertex ring.
// Ring: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12); every other pair is far apart (20).
// The MST is {0–1, 1–2, 2–3, 3–4} with total weight 11.
func ExamplePrim_pentagon() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 20, 20, 12},
		{1, 0, 2, 20, 20},
		{20, 2, 0, 3, 20},
		{20, 20, 3, 0, 5},
		{12, 20, 20, 5, 0},
	})

	edges, total, err := prim_kruskal.Prim(d, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleEdgeDistances shows the longest MST edge used as a connectivity threshold.
func ExampleEdgeDistances() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})

	ds, _ := prim_kruskal.EdgeDistances(d)
	longest := 0.0
	for _, v := range ds {
		if v > longest {
			longest = v
		}
	}
	fmt.Println(ds, longest)
	// Output: [1 1] 1
}
