// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// ErrInvalidMatrix indicates that MST algorithms require a non-nil, square distance
// matrix whose entries are non-negative and not NaN (+Inf marks a missing edge).
var ErrInvalidMatrix = errors.New("prim_kruskal: MST requires a square, non-negative distance matrix")

// ErrRootOutOfRange indicates that the Prim start vertex is not a valid row index.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0, or when
// |V| > 1 and +Inf entries split the vertices into several components.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is one tree edge between vertices (row indices) From and To.
// Weight is the distance read from the matrix.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex index for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(d).
//	– If opts.Method == MethodPrim:    calls Prim(d, opts.Root).
//	– Otherwise:                       returns ErrUnknownMethod.
//
// Returns:
//
//	[]Edge  — slice of edges in MST (empty if the matrix is 1×1).
//	float64 — total weight of MST (zero if no edges).
//	error   — non-nil if computation cannot proceed.
func Compute(d matrix.Matrix, opts MSTOptions) ([]Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(d)
	case MethodPrim:
		return Prim(d, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// EdgeDistances returns the weights of the MST edges of d, in the order the
// default algorithm (Kruskal) selected them. This is the spanning-tree
// collaborator used to derive a default connectivity threshold.
func EdgeDistances(d matrix.Matrix) ([]float64, error) {
	return EdgeDistancesWith(d, DefaultOptions())
}

// EdgeDistancesWith is EdgeDistances with an explicit algorithm choice.
func EdgeDistancesWith(d matrix.Matrix, opts MSTOptions) ([]float64, error) {
	edges, _, err := Compute(d, opts)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = e.Weight
	}

	return out, nil
}

// MaxEdge returns the largest Weight among edges, or 0 for an empty tree.
func MaxEdge(edges []Edge) float64 {
	var best float64
	for _, e := range edges {
		if e.Weight > best {
			best = e.Weight
		}
	}

	return best
}

// validateDistances checks the shared preconditions of Prim and Kruskal and
// returns the vertex count.
func validateDistances(d matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMatrix, err)
	}
	n := d.Rows()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = d.At(i, j)
			if math.IsNaN(v) || v < 0 {
				return 0, fmt.Errorf("%w: entry (%d,%d)=%g", ErrInvalidMatrix, i, j, v)
			}
		}
	}

	return n, nil
}

// weight reads the undirected edge {i,j} from the lower triangle, as a
// dist object does. ok is false for a missing (+Inf) edge.
func weight(d matrix.Matrix, i, j int) (w float64, ok bool) {
	if i < j {
		i, j = j, i
	}
	w, _ = d.At(i, j)

	return w, !math.IsInf(w, 1)
}
