// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum/mat.
//
// Kernels that need BLAS-backed products and zero-copy sub-matrix views work on
// *mat.Dense. ToGonum and FromGonum copy data across the boundary so the two
// sides never share storage.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors: ErrNilMatrix, ErrBadShape (zero-sized input; gonum rejects it).
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGonum, r, c, ErrBadShape)
	}

	data := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)

		return mat.NewDense(r, c, data), nil
	}
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if data[i*c+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opToGonum, err)
			}
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// Non-finite entries are rejected with ErrNaNInf.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: %w", opFromGonum, denseErrorf(opFromGonum, i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// fromGonumRows copies rows [r0, r1) of g into dst starting at dst row d0.
// Shapes are the caller's responsibility.
func fromGonumRows(dst *Dense, d0 int, g mat.Matrix, r0, r1 int) {
	_, c := g.Dims()
	for i := r0; i < r1; i++ {
		base := (d0 + i - r0) * dst.c
		for j := 0; j < c; j++ {
			dst.data[base+j] = g.At(i, j)
		}
	}
}

// StackGonum builds a Dense by stacking the given gonum blocks vertically in
// order. nil blocks are skipped, which lets callers pass empty row groups.
// All non-nil blocks must share the column count cols.
//
// Errors: ErrBadShape (no rows, cols <= 0), ErrDimensionMismatch (column count).
// Complexity: O(total rows * cols).
func StackGonum(cols int, blocks ...mat.Matrix) (*Dense, error) {
	const op = "StackGonum"
	rows := 0
	for _, b := range blocks {
		if isNilBlock(b) {
			continue
		}
		r, c := b.Dims()
		if c != cols {
			return nil, fmt.Errorf("%s: block has %d columns, want %d: %w", op, c, cols, ErrDimensionMismatch)
		}
		rows += r
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	next := 0
	for _, b := range blocks {
		if isNilBlock(b) {
			continue
		}
		r, _ := b.Dims()
		fromGonumRows(out, next, b, 0, r)
		next += r
	}

	return out, nil
}

// isNilBlock reports whether b is nil or a typed nil *mat.Dense.
func isNilBlock(b mat.Matrix) bool {
	if b == nil {
		return true
	}
	d, ok := b.(*mat.Dense)

	return ok && d == nil
}
