// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the validation checks used by kernels.
//  - Return sentinels wrapped with a validator tag so call sites can wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing; fixed i→j scan order,
//    so the first reported violation is always the same for the same input.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → values).
//  - Range-based validators assume the range has already been bounds-checked
//    by the caller unless stated otherwise.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// at reads (i,j) through the *Dense fast path when possible.
// Callers guarantee the indices are in range.
func at(m Matrix, i, j int) float64 {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j]
	}
	v, _ := m.At(i, j)

	return v
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = at(m, i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite: (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects any entry < 0.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v := at(m, i, j); v < 0 {
				return fmt.Errorf("ValidateNonNegative: (%d,%d)=%g: %w", i, j, v, ErrNegativeEntry)
			}
		}
	}

	return nil
}

// ValidateRowStochastic checks that every row of m sums to 1 within tol.
// When allowZero is true an all-zero row is accepted as well.
//
// Errors: ErrNilMatrix, ErrNaNInf (bad tol), ErrNotRowStochastic.
// Complexity: O(r*c).
func ValidateRowStochastic(m Matrix, tol float64, allowZero bool) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}

	return ValidateRowStochasticRange(m, 0, m.Rows(), tol, allowZero)
}

// ValidateRowStochasticRange is ValidateRowStochastic restricted to rows [r0, r1).
// An empty range is trivially valid.
//
// Errors: ErrNilMatrix, ErrOutOfRange (bad range), ErrNaNInf (bad tol), ErrNotRowStochastic.
// Complexity: O((r1-r0)*c).
func ValidateRowStochasticRange(m Matrix, r0, r1 int, tol float64, allowZero bool) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if r0 < 0 || r1 < r0 || r1 > m.Rows() {
		return fmt.Errorf("%s: rows [%d,%d): %w", tag, r0, r1, ErrOutOfRange)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf(tag, ErrNaNInf)
	}
	tol = math.Abs(tol)

	c := m.Cols()
	var i, j int
	var v, sum, mass float64
	for i = r0; i < r1; i++ {
		sum, mass = 0, 0
		for j = 0; j < c; j++ {
			v = at(m, i, j)
			sum += v
			mass += math.Abs(v)
		}
		if allowZero && mass <= tol {
			continue
		}
		if math.Abs(sum-1) > tol {
			return fmt.Errorf("%s: row %d sums to %g: %w", tag, i, sum, ErrNotRowStochastic)
		}
	}

	return nil
}

// ValidateZeroBlock checks that the block rows [r0,r1) × cols [c0,c1) has
// every |entry| ≤ tol. Empty blocks are trivially zero.
//
// Errors: ErrNilMatrix, ErrOutOfRange (bad block), ErrNonZeroBlock.
// Complexity: O((r1-r0)*(c1-c0)).
func ValidateZeroBlock(m Matrix, r0, r1, c0, c1 int, tol float64) error {
	const tag = "ValidateZeroBlock"
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if r0 < 0 || r1 < r0 || r1 > m.Rows() || c0 < 0 || c1 < c0 || c1 > m.Cols() {
		return fmt.Errorf("%s: block [%d,%d)x[%d,%d): %w", tag, r0, r1, c0, c1, ErrOutOfRange)
	}
	tol = math.Abs(tol)

	var i, j int
	for i = r0; i < r1; i++ {
		for j = c0; j < c1; j++ {
			if v := at(m, i, j); math.Abs(v) > tol {
				return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, ErrNonZeroBlock)
			}
		}
	}

	return nil
}
