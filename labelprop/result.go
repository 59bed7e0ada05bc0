// SPDX-License-Identifier: MIT

package labelprop

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvprop/matrix"
)

// Status is the terminal state of a propagation call.
type Status int

const (
	// StatusConverged: the total change fell below epsilon.
	StatusConverged Status = iota + 1

	// StatusExhausted: the iteration budget ran out first.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of Propagate.
//
// A converged result holds the full N×L label matrix in row order labeled A,
// unlabeled A, labeled B, unlabeled B. An exhausted result holds no matrix.
type Result struct {
	Status     Status
	Iterations int     // iterations performed
	Delta      float64 // change metric of the last iteration (+Inf if none ran)

	labels *matrix.Dense
}

// Converged reports whether Status == StatusConverged.
func (r *Result) Converged() bool { return r != nil && r.Status == StatusConverged }

// Labels returns the refined label matrix, or a *NotConvergedError
// (errors.Is(err, ErrNotConverged)) when the budget ran out.
// The matrix is owned by the caller.
func (r *Result) Labels() (*matrix.Dense, error) {
	if !r.Converged() {
		if r == nil {
			return nil, ErrNotConverged
		}

		return nil, &NotConvergedError{Iterations: r.Iterations, Delta: r.Delta}
	}

	return r.labels, nil
}

// Predict returns the argmax class of every row of the label matrix.
// Ties resolve to the lowest class index; an all-zero row yields -1.
func (r *Result) Predict() ([]int, error) {
	labels, err := r.Labels()
	if err != nil {
		return nil, err
	}
	out := make([]int, labels.Rows())
	for i := range out {
		row, err := labels.Row(i)
		if err != nil {
			return nil, err
		}
		if floats.Max(row) <= 0 {
			out[i] = -1
			continue
		}
		out[i] = floats.MaxIdx(row)
	}

	return out, nil
}
