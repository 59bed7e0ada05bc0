// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions in this package return these sentinels, usually wrapped with a
// method or validator tag; callers match them with errors.Is. Nothing here
// panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Do not %w wrap sentinels at definition site; attach context at the call site.

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (non-positive dimensions, ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a negative entry where a non-negative matrix is required.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNotRowStochastic signals a row whose sum differs from 1 beyond tolerance.
	ErrNotRowStochastic = errors.New("matrix: row does not sum to 1")

	// ErrNonZeroBlock signals a block expected to be zero that holds a non-zero entry.
	ErrNonZeroBlock = errors.New("matrix: block is not zero")
)
