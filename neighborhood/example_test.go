package neighborhood_test

import (
	"fmt"

	"github.com/katalvlaran/weightmatrix/matrix"
	"github.com/katalvlaran/weightmatrix/neighborhood"
)

// ExampleCompute builds linear weights for three points on a line, keeping
// only neighbors at distance <= 1.
func ExampleCompute() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})

	w, err := neighborhood.Compute(d, neighborhood.MethodLinear, neighborhood.WithThreshold(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(w)
	// Output:
	// [0, 0.5, 0]
	// [0.5, 0, 0.5]
	// [0, 0.5, 0]
}

// ExampleWeighter_Run derives the threshold from the minimum spanning tree.
func ExampleWeighter_Run() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})

	w, _ := neighborhood.New(neighborhood.MethodConnectivity)
	res, _ := w.Run(d)
	fmt.Println("threshold:", res.Threshold)
	fmt.Print(res.W)
	// Output:
	// threshold: 1
	// [0, 1, 0]
	// [1, 0, 1]
	// [0, 1, 0]
}

// ExampleDiagnose reports entities left without neighbors.
func ExampleDiagnose() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 5},
		{1, 0, 5},
		{5, 5, 0},
	})

	w, _ := neighborhood.Compute(d, neighborhood.MethodDBMEM, neighborhood.WithThreshold(1))
	rep := neighborhood.Diagnose(w)
	fmt.Println("isolated:", rep.Isolated, "links:", rep.Links)
	// Output: isolated: [2] links: 1
}
