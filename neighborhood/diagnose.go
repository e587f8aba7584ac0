// SPDX-License-Identifier: MIT

package neighborhood

import (
	"math"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// Diagnose inspects a neighborhood matrix for degenerate features: infinite
// weights, isolated entities and the absence of any link. An entity is
// isolated when both its row and its column are zero off the diagonal, so a
// one-sided link (W[i,j] != 0, W[j,i] == 0) connects both ends. A nil or
// non-square w is reported as Empty.
// Complexity: O(n²).
func Diagnose(w matrix.Matrix) Report {
	if matrix.ValidateSquareNonNil(w) != nil {
		return Report{Empty: true}
	}

	n := w.Rows()
	var r Report
	linked := make([]bool, n)
	var i, j int
	var v, u float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = w.At(i, j)
			if math.IsInf(v, 0) {
				r.Infinite++
			}
			if i == j || v == 0 {
				continue
			}
			linked[i], linked[j] = true, true
			if j > i {
				r.Links++
				continue
			}
			// j < i: count the pair only if the mirrored cell did not.
			if u, _ = w.At(j, i); u == 0 {
				r.Links++
			}
		}
	}
	for i = 0; i < n; i++ {
		if !linked[i] {
			r.Isolated = append(r.Isolated, i)
		}
	}
	r.Empty = r.Links == 0

	return r
}
