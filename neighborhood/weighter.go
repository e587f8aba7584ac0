// SPDX-License-Identifier: MIT

package neighborhood

import (
	"fmt"
	"math"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// Weighter computes weighted neighborhood matrices with a fixed method and
// configuration. It is immutable after New and safe for concurrent use.
type Weighter struct {
	method Method
	opts   Options
}

// New validates method and opts and returns a ready Weighter.
//
// Errors:
//   - ErrInvalidMethod    : method is not one of Methods() ("" selects dbmem).
//   - ErrMissingParameter : alpha missing for concave-down, beta for concave-up.
//   - ErrInvalidParameter : threshold < 0 or non-finite; alpha/beta <= 0 or
//     non-finite; epsilon < 0 or non-finite.
func New(method Method, opts ...Option) (*Weighter, error) {
	m, err := ParseMethod(string(method))
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if err = validateParams(m, o); err != nil {
		return nil, err
	}

	return &Weighter{method: m, opts: o}, nil
}

// Method returns the resolved weighting method.
func (w *Weighter) Method() Method { return w.method }

// Options returns the resolved configuration.
func (w *Weighter) Options() Options { return w.opts }

// Weigh computes W for the distance matrix d. d is never mutated.
func (w *Weighter) Weigh(d matrix.Matrix) (*matrix.Dense, error) {
	res, err := w.Run(d)
	if err != nil {
		return nil, err
	}

	return res.W, nil
}

// Run computes W for d and reports the threshold it used.
//
// Implementation:
//   - Stage 1: validate d (square, finite, non-negative; strict checks if enabled).
//   - Stage 2: t = fixed threshold, or max of the spanning-tree edge distances.
//   - Stage 3: B[i,j] = 1 if d[i,j] <= t else 0.
//   - Stage 4: A per method (A = B for connectivity).
//   - Stage 5: W = A ⊙ B with 0 annihilating ±Inf, then zero the diagonal.
//
// Complexity: O(n²) plus the spanning tree when t is derived.
func (w *Weighter) Run(d matrix.Matrix) (*Result, error) {
	// Stage 1
	if err := validateDistances(d, w.opts.strict, w.opts.eps); err != nil {
		return nil, err
	}

	// Stage 2
	t, fromTree := w.opts.threshold, false
	if !w.opts.hasThreshold {
		var err error
		if t, err = threshold(d, w.opts.spanning); err != nil {
			return nil, err
		}
		fromTree = true
	}

	// Stage 3
	b, err := connectivity(d, t)
	if err != nil {
		return nil, fmt.Errorf("neighborhood: Run: %w", err)
	}

	// Stage 4
	a := b
	if w.method != MethodConnectivity {
		if a, err = edgeWeights(d, w.method, t, w.opts.alpha, w.opts.beta); err != nil {
			return nil, fmt.Errorf("neighborhood: Run: %w", err)
		}
	}

	// Stage 5
	out, err := matrix.HadamardMasked(a, b, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, fmt.Errorf("neighborhood: Run: %w", err)
	}
	if w.opts.zeroDiagonal {
		if err = matrix.FillDiagonal(out, 0); err != nil {
			return nil, fmt.Errorf("neighborhood: Run: %w", err)
		}
	}

	return &Result{W: out, Method: w.method, Threshold: t, ThresholdFromTree: fromTree}, nil
}

// Compute builds the weighted neighborhood matrix of d in one call.
// It is New(method, opts...) followed by Weigh(d); all parameters are
// validated before any matrix is allocated.
func Compute(d matrix.Matrix, method Method, opts ...Option) (*matrix.Dense, error) {
	w, err := New(method, opts...)
	if err != nil {
		return nil, err
	}

	return w.Weigh(d)
}

// Threshold returns the maximum edge distance of the spanning tree of d,
// computed by tree (prim_kruskal.EdgeDistances when nil).
// A tree without edges (n = 1) yields 0.
func Threshold(d matrix.Matrix, tree SpanningTreeFunc) (float64, error) {
	if err := validateDistances(d, false, 0); err != nil {
		return 0, err
	}
	if tree == nil {
		tree = defaultOptions().spanning
	}

	return threshold(d, tree)
}

// Connectivity returns B with B[i,j] = 1 if d[i,j] <= t else 0.
func Connectivity(d matrix.Matrix, t float64) (*matrix.Dense, error) {
	if err := validateDistances(d, false, 0); err != nil {
		return nil, err
	}
	if err := validateThreshold(t); err != nil {
		return nil, err
	}

	return connectivity(d, t)
}

// EdgeWeights returns A for method at threshold t. alpha is read only by
// concave-down and beta only by concave-up. For connectivity A equals B.
// A may hold +Inf (concave-up at zero distance).
func EdgeWeights(d matrix.Matrix, method Method, t, alpha, beta float64) (*matrix.Dense, error) {
	m, err := ParseMethod(string(method))
	if err != nil {
		return nil, err
	}
	o := gatherOptions(WithThreshold(t), WithAlpha(alpha), WithBeta(beta))
	if err = validateParams(m, o); err != nil {
		return nil, err
	}
	if err = validateDistances(d, false, 0); err != nil {
		return nil, err
	}
	if m == MethodConnectivity {
		return connectivity(d, t)
	}

	return edgeWeights(d, m, t, alpha, beta)
}

// validateDistances maps matrix validation failures onto ErrInvalidInput,
// keeping the matrix sentinel in the chain. eps must already be validated.
func validateDistances(d matrix.Matrix, strict bool, eps float64) error {
	if err := matrix.ValidateDistance(d, strict, matrix.WithEpsilon(eps)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

func validateThreshold(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("%w: threshold %g must be finite and >= 0", ErrInvalidParameter, t)
	}

	return nil
}

// validateParams checks the parameters method actually reads.
func validateParams(m Method, o Options) error {
	if o.hasThreshold {
		if err := validateThreshold(o.threshold); err != nil {
			return err
		}
	}
	if math.IsNaN(o.eps) || math.IsInf(o.eps, 0) || o.eps < 0 {
		return fmt.Errorf("%w: epsilon %g must be finite and >= 0", ErrInvalidParameter, o.eps)
	}

	switch m {
	case MethodConcaveDown:
		return validateExponent("alpha", m, o.alpha, o.hasAlpha)
	case MethodConcaveUp:
		return validateExponent("beta", m, o.beta, o.hasBeta)
	}

	return nil
}

func validateExponent(name string, m Method, v float64, ok bool) error {
	if !ok {
		return fmt.Errorf("%w: %s is required by %s", ErrMissingParameter, name, m)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s %g must be finite and > 0", ErrInvalidParameter, name, v)
	}

	return nil
}

// threshold takes the maximum spanning-tree edge distance.
func threshold(d matrix.Matrix, tree SpanningTreeFunc) (float64, error) {
	ds, err := tree(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSpanningTree, err)
	}

	var t float64
	for i, v := range ds {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, fmt.Errorf("%w: edge %d has distance %g", ErrSpanningTree, i, v)
		}
		if v > t {
			t = v
		}
	}

	return t, nil
}

// connectivity stages B as a zero matrix shaped like d and marks the pairs
// within t.
func connectivity(d matrix.Matrix, t float64) (*matrix.Dense, error) {
	b, err := matrix.ZerosLike(d)
	if err != nil {
		return nil, err
	}
	err = b.Apply(func(i, j int, _ float64) float64 {
		if v, _ := d.At(i, j); v <= t {
			return 1
		}

		return 0
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// ratio is num/den, or 0 when den is 0. With den = 4t or max(D) equal to 0,
// every cell that survives the mask has num = 0 as well.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// edgeWeights builds A for the real-valued methods. The result skips NaN/Inf
// validation since concave-up is infinite at zero distance.
func edgeWeights(d matrix.Matrix, m Method, t, alpha, beta float64) (*matrix.Dense, error) {
	var f func(i, j int, v float64) float64

	switch m {
	case MethodDBMEM:
		den := 4 * t
		f = func(_, _ int, v float64) float64 {
			r := ratio(v, den)
			return 1 - r*r
		}
	case MethodLinear, MethodConcaveDown:
		maxD, err := matrix.Max(d)
		if err != nil {
			return nil, err
		}
		if m == MethodLinear {
			f = func(_, _ int, v float64) float64 { return 1 - ratio(v, maxD) }
		} else {
			f = func(_, _ int, v float64) float64 { return 1 - math.Pow(ratio(v, maxD), alpha) }
		}
	case MethodConcaveUp:
		f = func(_, _ int, v float64) float64 { return 1 / math.Pow(v, beta) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, m)
	}

	return matrix.Map(d, f, matrix.WithNoValidateNaNInf())
}
