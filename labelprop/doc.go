// Package labelprop classifies the unlabeled nodes of a bipartite graph by
// propagating label distributions across its edges.
//
// 🚀 What is bipartite label propagation?
//
//	The graph has two node types, A and B, and edges only between types.
//	Both types share one set of L classes. Some nodes of each type carry a
//	known distribution over the classes; the rest are estimated by repeatedly
//	averaging their opposite-type neighbours' distributions until the
//	estimates stop moving. Typical uses:
//	  • users × items (who bought what → item categories, user segments)
//	  • documents × terms
//	  • authors × venues
//
// ✨ Key features:
//   - explicit partition: Partition{Offset, LabeledA, LabeledB} → four named Ranges
//   - Jacobi update: both unlabeled groups read the same previous snapshot
//   - L1 row normalization with zero rows kept at zero (no NaN)
//   - tagged outcome: StatusConverged with the labels, or StatusExhausted with
//     a NotConvergedError, never a partially updated matrix
//   - fail-fast validation of shapes, partition, row sums and same-type edges
//   - optional concurrent update of the two groups (WithParallel)
//   - cancellation through PropagateContext
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvprop/labelprop"
//
//	// Rows: labeled A, unlabeled A, labeled B, unlabeled B.
//	res, err := labelprop.Propagate(x, y,
//	  labelprop.Partition{Offset: 2, LabeledA: 1, LabeledB: 1},
//	  labelprop.WithEpsilon(1e-3),
//	)
//	if err != nil {
//	  // ErrInvalidPartition, matrix.ErrNotRowStochastic, ErrSameTypeEdge, ...
//	}
//	labels, err := res.Labels() // *NotConvergedError when the budget ran out
//
// Update rule, per iteration:
//
//	Y_au' = L1( T_aubl·Y_bl + T_aubu·Y_bu )
//	Y_bu' = L1( T_bual·Y_al + T_buau·Y_au )
//	delta = Σ|Y_au' − Y_au| + Σ|Y_bu' − Y_bu|   (stop when delta < ε)
//
// Performance:
//
//   - Time:   O(I · (|UA|·|B| + |UB|·|A|) · L) for I iterations
//   - Memory: O(N² + N·L); X and Y are copied once into gonum storage
//
// The input adjacency is expected to be row-normalized by the caller; this
// package checks it but never normalizes it.
package labelprop
