// Package matrix provides the dense float64 container shared by the
// propagation kernels, together with the validators and row operations they
// rely on.
//
// 🚀 What is inside?
//
//   - Matrix: the minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense: row-major implementation with bounds-checked accessors.
//   - Validators: nil, shape, finite, non-negative, row-stochastic and
//     zero-block checks that return wrapped sentinels.
//   - Row operations: RowSums and NormalizeRowsL1 (zero rows stay zero).
//   - gonum bridge: ToGonum / FromGonum to hand data to gonum/mat kernels.
//
// ⚙️ Usage:
//
//	x, err := matrix.NewDenseFrom([][]float64{
//	  {0, 1},
//	  {1, 0},
//	})
//	if err != nil {
//	  // handle ErrBadShape / ErrNaNInf
//	}
//	if err = matrix.ValidateRowStochastic(x, 1e-9, false); err != nil {
//	  // handle ErrNotRowStochastic
//	}
//
// Errors are package sentinels; match them with errors.Is.
package matrix
