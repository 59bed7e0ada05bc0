// Package lvprop is a small numeric toolkit for semi-supervised labeling of
// bipartite graphs by label propagation.
//
// 🚀 What is lvprop?
//
//	A pure-Go library built on gonum that brings together:
//		• matrix/    – a validated dense matrix, row statistics, L1 row
//		               normalization and gonum interop helpers
//		• labelprop/ – bipartite label propagation with a Jacobi update,
//		               context cancellation, parallel group updates & logging
//
// ✨ Why choose lvprop?
//
//   - Small API – one call, Propagate, plus functional options
//   - Fail fast – shapes, partition and numeric preconditions are checked
//     before the first iteration
//   - Deterministic – sequential and parallel runs agree bit for bit
//
// Quick ASCII example:
//
//	  A0 (labeled) ─── B2 (labeled)
//	  A1           ─┬─ B2
//	                └─ B3
//
//	two unlabeled nodes (A1, B3) pick up labels from their neighbours.
//
//	go get github.com/katalvlaran/lvprop
package lvprop
