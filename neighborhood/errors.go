// SPDX-License-Identifier: MIT

package neighborhood

import "errors"

// Every message is prefixed with "neighborhood: ...". Call sites add context
// with fmt.Errorf; callers match with errors.Is. Invalid-input errors also
// wrap the underlying matrix sentinel (e.g. matrix.ErrNegative).

var (
	// ErrInvalidInput indicates that D is nil, not square, holds NaN/±Inf or
	// negative entries, or (under WithStrictDistances) is asymmetric or has a
	// non-zero diagonal.
	ErrInvalidInput = errors.New("neighborhood: invalid distance matrix")

	// ErrInvalidMethod indicates an unrecognized weighting method.
	ErrInvalidMethod = errors.New("neighborhood: invalid method")

	// ErrMissingParameter indicates that alpha (concave-down) or beta
	// (concave-up) was not supplied.
	ErrMissingParameter = errors.New("neighborhood: missing parameter")

	// ErrInvalidParameter indicates a supplied parameter outside its domain:
	// a negative or non-finite threshold, or a non-positive or non-finite
	// alpha/beta.
	ErrInvalidParameter = errors.New("neighborhood: invalid parameter")

	// ErrSpanningTree indicates that the spanning-tree strategy failed or
	// returned unusable edge distances.
	ErrSpanningTree = errors.New("neighborhood: spanning tree")
)
