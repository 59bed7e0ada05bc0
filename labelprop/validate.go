// SPDX-License-Identifier: MIT

package labelprop

import (
	"fmt"

	"github.com/katalvlaran/lvprop/matrix"
)

// validateInputs runs every precondition check before any allocation of the
// working set. Order is fixed so the reported error is stable:
// X shape → Y shape → partition → finiteness → (unless trusted) signs,
// X row sums, same-type blocks, Y row sums.
func validateInputs(x, y matrix.Matrix, p Partition, o Options) (Layout, error) {
	if err := matrix.ValidateSquare(x); err != nil {
		return Layout{}, fmt.Errorf("labelprop: X: %w", err)
	}
	n := x.Rows()
	if n == 0 {
		return Layout{}, fmt.Errorf("labelprop: X: empty: %w", matrix.ErrBadShape)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return Layout{}, fmt.Errorf("labelprop: Y: %w", err)
	}
	if y.Rows() != n {
		return Layout{}, fmt.Errorf("labelprop: Y has %d rows, X has %d: %w", y.Rows(), n, matrix.ErrDimensionMismatch)
	}
	if y.Cols() < 1 {
		return Layout{}, fmt.Errorf("labelprop: Y has no classes: %w", matrix.ErrBadShape)
	}

	layout, err := p.Layout(n)
	if err != nil {
		return Layout{}, err
	}

	if err = matrix.ValidateFinite(x); err != nil {
		return Layout{}, fmt.Errorf("labelprop: X: %w", err)
	}
	if err = matrix.ValidateFinite(y); err != nil {
		return Layout{}, fmt.Errorf("labelprop: Y: %w", err)
	}
	if o.trusted {
		return layout, nil
	}

	if err = validateAdjacency(x, layout, o.rowTol); err != nil {
		return Layout{}, err
	}
	if err = validateLabels(y, layout, o.rowTol); err != nil {
		return Layout{}, err
	}

	return layout, nil
}

// validateAdjacency: non-negative, rows sum to 1 or are empty (isolated
// nodes), and both same-type diagonal blocks are zero.
func validateAdjacency(x matrix.Matrix, l Layout, tol float64) error {
	if err := matrix.ValidateNonNegative(x); err != nil {
		return fmt.Errorf("labelprop: X: %w", err)
	}
	if err := matrix.ValidateRowStochastic(x, tol, true); err != nil {
		return fmt.Errorf("labelprop: X: %w", err)
	}
	a, b := l.TypeA(), l.TypeB()
	if err := matrix.ValidateZeroBlock(x, a.Start, a.End, a.Start, a.End, tol); err != nil {
		return fmt.Errorf("labelprop: X: A-A block: %w: %w", ErrSameTypeEdge, err)
	}
	if err := matrix.ValidateZeroBlock(x, b.Start, b.End, b.Start, b.End, tol); err != nil {
		return fmt.Errorf("labelprop: X: B-B block: %w: %w", ErrSameTypeEdge, err)
	}

	return nil
}

// validateLabels: non-negative, labeled rows are distributions, unlabeled
// rows are distributions or all zero.
func validateLabels(y matrix.Matrix, l Layout, tol float64) error {
	if err := matrix.ValidateNonNegative(y); err != nil {
		return fmt.Errorf("labelprop: Y: %w", err)
	}
	groups := []struct {
		name      string
		rows      Range
		allowZero bool
	}{
		{"labeled A", l.LabeledA, false},
		{"unlabeled A", l.UnlabeledA, true},
		{"labeled B", l.LabeledB, false},
		{"unlabeled B", l.UnlabeledB, true},
	}
	for _, g := range groups {
		if err := matrix.ValidateRowStochasticRange(y, g.rows.Start, g.rows.End, tol, g.allowZero); err != nil {
			return fmt.Errorf("labelprop: Y: %s rows %s: %w", g.name, g.rows, err)
		}
	}

	return nil
}
