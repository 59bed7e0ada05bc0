// SPDX-License-Identifier: MIT
// Package: lvprop/internal/bigraph
//
// Deterministic fixtures for bipartite label propagation tests and benchmarks.
//
// Contract:
//   • Node order is type A first (indices 0..nA-1), then type B (nA..nA+nB-1).
//   • Adjacency rows are L1-normalized; a node without edges keeps a zero row.
//   • Only cross-type entries are ever non-zero.
//   • Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   • Stable trial order: i asc over A, inner j asc over B.
//   • Identical output for a fixed *rand.Rand seed.

package bigraph

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvprop/matrix"
)

// File-local constants for method tags and domains.
const (
	methodComplete = "Complete"
	methodRandom   = "Random"
	methodLabels   = "Labels"

	minPartitionSize = 1
	probMin          = 0.0
	probMax          = 1.0
)

var (
	// ErrTooFewVertices indicates a partition or class count below the minimum.
	ErrTooFewVertices = errors.New("bigraph: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("bigraph: probability out of range")

	// ErrNeedRandSource indicates a stochastic fixture was asked for without an RNG.
	ErrNeedRandSource = errors.New("bigraph: rng is required")

	// ErrInvalidLabel indicates a known label that is not a valid node/class pair.
	ErrInvalidLabel = errors.New("bigraph: invalid label")
)

// Complete returns the row-normalized adjacency of K_{nA,nB}: every A row puts
// 1/nB on each B column and every B row puts 1/nA on each A column.
func Complete(nA, nB int) (*matrix.Dense, error) {
	if nA < minPartitionSize || nB < minPartitionSize {
		return nil, fmt.Errorf("%s: nA=%d, nB=%d (each must be ≥ %d): %w",
			methodComplete, nA, nB, minPartitionSize, ErrTooFewVertices)
	}

	return build(nA, nB, func(int, int) float64 { return 1 })
}

// Random samples each cross pair (a, b) independently with probability p and
// gives the symmetric pair a weight drawn from (0, 1]. Rows are then normalized.
func Random(nA, nB int, p float64, rng *rand.Rand) (*matrix.Dense, error) {
	if nA < minPartitionSize || nB < minPartitionSize {
		return nil, fmt.Errorf("%s: nA=%d, nB=%d (each must be ≥ %d): %w",
			methodRandom, nA, nB, minPartitionSize, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	return build(nA, nB, func(int, int) float64 {
		switch {
		case p == probMin:
			return 0
		case p == probMax && rng == nil:
			return 1
		case rng.Float64() >= p:
			return 0
		default:
			return 1 - rng.Float64() // (0, 1]
		}
	})
}

// build fills the symmetric cross-type blocks with weight(a, b) and normalizes rows.
func build(nA, nB int, weight func(a, b int) float64) (*matrix.Dense, error) {
	n := nA + nB
	raw, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for a := 0; a < nA; a++ {
		for b := 0; b < nB; b++ {
			w := weight(a, b)
			if w == 0 {
				continue
			}
			if err = raw.Set(a, nA+b, w); err != nil {
				return nil, err
			}
			if err = raw.Set(nA+b, a, w); err != nil {
				return nil, err
			}
		}
	}
	x, _, err := matrix.NormalizeRowsL1(raw)

	return x, err
}

// Labels returns an n×classes label matrix: rows listed in known are one-hot
// on their class, every other row is uniform 1/classes.
func Labels(n, classes int, known map[int]int) (*matrix.Dense, error) {
	if n < minPartitionSize || classes < minPartitionSize {
		return nil, fmt.Errorf("%s: n=%d, classes=%d: %w", methodLabels, n, classes, ErrTooFewVertices)
	}
	for i, class := range known {
		if i < 0 || i >= n || class < 0 || class >= classes {
			return nil, fmt.Errorf("%s: node %d class %d: %w", methodLabels, i, class, ErrInvalidLabel)
		}
	}
	y, err := matrix.NewDense(n, classes)
	if err != nil {
		return nil, err
	}
	uniform := 1 / float64(classes)
	for i := 0; i < n; i++ {
		class, ok := known[i]
		for j := 0; j < classes; j++ {
			v := uniform
			if ok {
				v = 0
				if j == class {
					v = 1
				}
			}
			if err = y.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return y, nil
}
