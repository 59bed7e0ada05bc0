// SPDX-License-Identifier: MIT

package labelprop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprop/labelprop"
	"github.com/katalvlaran/lvprop/matrix"
)

// mustDense builds a *matrix.Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustRow reads row i of m or fails the test.
func mustRow(t testing.TB, m *matrix.Dense, i int) []float64 {
	t.Helper()
	row, err := m.Row(i)
	require.NoError(t, err)

	return row
}

// fourNode is the smallest interesting graph:
//
//	node 0 (A, labeled [1,0]) ── node 2 (B, labeled [0,1])
//	node 1 (A, unlabeled)     ── node 2, node 3 (weights 0.5 / 0.5)
//	node 3 (B, unlabeled)     ── node 1
func fourNode(t testing.TB) (x *matrix.Dense, p labelprop.Partition) {
	x = mustDense(t, [][]float64{
		{0, 0, 1, 0},
		{0, 0, 0.5, 0.5},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})

	return x, labelprop.Partition{Offset: 2, LabeledA: 1, LabeledB: 1}
}

// fourNodeLabels returns Y for fourNode with the two unlabeled rows set to u.
func fourNodeLabels(t testing.TB, u []float64) *matrix.Dense {
	return mustDense(t, [][]float64{
		{1, 0},
		u,
		{0, 1},
		u,
	})
}

// hide masks the concrete type of a Matrix to force non-*Dense code paths.
type hide struct{ matrix.Matrix }
