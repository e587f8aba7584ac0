// SPDX-License-Identifier: MIT

package neighborhood

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// Method selects the edge-weighting function.
type Method string

const (
	// MethodDBMEM is distance-based MEM weighting: 1 - (d/(4t))^2. It is the default.
	MethodDBMEM Method = "dbmem"
	// MethodLinear weights by 1 - d/max(D).
	MethodLinear Method = "linear"
	// MethodConcaveDown weights by 1 - (d/max(D))^alpha.
	MethodConcaveDown Method = "concave-down"
	// MethodConcaveUp weights by 1/d^beta.
	MethodConcaveUp Method = "concave-up"
	// MethodConnectivity keeps the raw 0/1 connectivity matrix.
	MethodConnectivity Method = "connectivity"
)

// methods lists the valid set in documentation order.
var methods = []Method{MethodDBMEM, MethodLinear, MethodConcaveDown, MethodConcaveUp, MethodConnectivity}

// Methods returns the valid weighting methods.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)

	return out
}

// ParseMethod resolves s to a Method. The empty string selects MethodDBMEM.
// Matching is case-insensitive and ignores surrounding spaces.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MethodDBMEM, nil
	}
	for _, m := range methods {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidMethod, s, validMethods())
}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }

func validMethods() string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}

	return "{" + strings.Join(names, ", ") + "}"
}

// SpanningTreeFunc returns the edge distances of a minimum spanning tree of d.
// Only their maximum is used, as the default connectivity threshold.
type SpanningTreeFunc func(d matrix.Matrix) ([]float64, error)

// Result is a computed neighborhood matrix together with the resolved inputs.
type Result struct {
	// W is the weighted neighborhood matrix (fresh, owned by the caller).
	W *matrix.Dense
	// Method is the weighting method actually applied.
	Method Method
	// Threshold is the connectivity threshold t actually used.
	Threshold float64
	// ThresholdFromTree reports whether t came from the spanning tree.
	ThresholdFromTree bool
}

// Report describes degenerate features of a neighborhood matrix.
type Report struct {
	// Infinite is the number of ±Inf cells (concave-up at zero distance).
	Infinite int
	// Isolated lists entities with no non-zero off-diagonal weight in their
	// row or column.
	Isolated []int
	// Links is the number of unordered pairs {i,j}, i != j, with a non-zero weight.
	Links int
	// Empty reports that every off-diagonal weight is zero.
	Empty bool
}

// Degenerate reports whether r holds anything worth a warning.
func (r Report) Degenerate() bool {
	return r.Infinite > 0 || len(r.Isolated) > 0 || r.Empty
}
