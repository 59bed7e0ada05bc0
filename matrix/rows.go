// SPDX-License-Identifier: MIT

// Package matrix - row reductions and L1 row normalization.
//
// Degenerate-row policy:
//   - A row whose L1 norm is 0 is left unchanged, which for a zero-norm row means
//     it stays all zeros. No division by zero, no NaN.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// RowSums returns Σ_j m[i,j] for every row i.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	sums := make([]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			sums[i] = floats.Sum(d.data[i*c : (i+1)*c])
		}

		return sums, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sums[i] += at(m, i, j)
		}
	}

	return sums, nil
}

// NormalizeRowsL1 returns a copy of m with every row divided by its L1 norm
// Σ_j |m[i,j]|, together with the original norms.
//
// Implementation:
//   - Stage 1: validate m (non-nil).
//   - Stage 2: copy into a fresh Dense.
//   - Stage 3: per row, compute the L1 norm and divide when it is positive.
//
// Behavior highlights:
//   - Zero rows stay zero (see degenerate-row policy above).
//   - m itself is never modified.
//
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL1(m Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNormalizeRowsL1, err)
	}
	out, err := toDense(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNormalizeRowsL1, err)
	}

	norms := make([]float64, out.r)
	var i, j int
	for i = 0; i < out.r; i++ {
		row := out.data[i*out.c : (i+1)*out.c]
		norms[i] = floats.Norm(row, 1)
		if norms[i] == 0 || math.IsNaN(norms[i]) {
			continue
		}
		for j = range row {
			row[j] /= norms[i]
		}
	}

	return out, norms, nil
}

// toDense returns a deep copy of m as *Dense.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
