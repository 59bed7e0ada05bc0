// SPDX-License-Identifier: MIT

package labelprop

import (
	"errors"
	"fmt"
)

// Error policy:
//   • Contract violations (shapes, partition, numeric preconditions) are
//     returned from Propagate before any iteration runs.
//   • Non-convergence is an outcome, reported through Result.Status; it
//     becomes an error only when the caller asks for the labels.
//   • Errors from package matrix are wrapped, so errors.Is works for both.
var (
	// ErrInvalidPartition indicates offsets or labeled counts that are negative,
	// exceed the matrix dimensions or contradict each other.
	ErrInvalidPartition = errors.New("labelprop: invalid partition")

	// ErrNotConverged indicates that the iteration budget ran out before the
	// total change fell below epsilon.
	ErrNotConverged = errors.New("labelprop: did not converge")

	// ErrSameTypeEdge indicates a non-zero adjacency entry between two nodes of
	// the same type.
	ErrSameTypeEdge = errors.New("labelprop: edge between nodes of the same type")
)

// NotConvergedError carries the state reached when the budget ran out.
// It unwraps to ErrNotConverged.
type NotConvergedError struct {
	Iterations int     // iterations performed
	Delta      float64 // change metric of the last iteration (+Inf if none ran)
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("labelprop: did not converge after %d iterations (last delta %g)", e.Iterations, e.Delta)
}

// Unwrap lets errors.Is(err, ErrNotConverged) match.
func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }
