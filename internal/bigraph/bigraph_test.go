// SPDX-License-Identifier: MIT

package bigraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprop/internal/bigraph"
	"github.com/katalvlaran/lvprop/matrix"
)

// TestComplete checks weights, row sums and the empty same-type blocks of K_{2,3}.
func TestComplete(t *testing.T) {
	x, err := bigraph.Complete(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, x.Rows())

	v, _ := x.At(0, 2)
	assert.InDelta(t, 1.0/3, v, 1e-15)
	v, _ = x.At(4, 1)
	assert.InDelta(t, 0.5, v, 1e-15)

	assert.NoError(t, matrix.ValidateRowStochastic(x, 1e-12, false))
	assert.NoError(t, matrix.ValidateZeroBlock(x, 0, 2, 0, 2, 0))
	assert.NoError(t, matrix.ValidateZeroBlock(x, 2, 5, 2, 5, 0))

	_, err = bigraph.Complete(0, 3)
	assert.ErrorIs(t, err, bigraph.ErrTooFewVertices)
}

// TestRandom checks determinism for a fixed seed and the parameter guards.
func TestRandom(t *testing.T) {
	a, err := bigraph.Random(10, 7, 0.3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := bigraph.Random(10, 7, 0.3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed, same graph")

	assert.NoError(t, matrix.ValidateRowStochastic(a, 1e-9, true))
	assert.NoError(t, matrix.ValidateZeroBlock(a, 0, 10, 0, 10, 0))
	assert.NoError(t, matrix.ValidateZeroBlock(a, 10, 17, 10, 17, 0))

	_, err = bigraph.Random(2, 2, 1.5, nil)
	assert.ErrorIs(t, err, bigraph.ErrInvalidProbability)
	_, err = bigraph.Random(2, 2, 0.5, nil)
	assert.ErrorIs(t, err, bigraph.ErrNeedRandSource)

	empty, err := bigraph.Random(2, 2, 0, nil)
	require.NoError(t, err)
	sums, _ := matrix.RowSums(empty)
	assert.Equal(t, []float64{0, 0, 0, 0}, sums)
}

// TestLabels checks one-hot and uniform rows and rejects bad assignments.
func TestLabels(t *testing.T) {
	y, err := bigraph.Labels(3, 2, map[int]int{0: 1})
	require.NoError(t, err)
	assert.Equal(t, "[0, 1]\n[0.5, 0.5]\n[0.5, 0.5]\n", y.String())

	_, err = bigraph.Labels(3, 2, map[int]int{3: 0})
	assert.ErrorIs(t, err, bigraph.ErrInvalidLabel)
	_, err = bigraph.Labels(3, 2, map[int]int{1: 2})
	assert.ErrorIs(t, err, bigraph.ErrInvalidLabel)
	_, err = bigraph.Labels(3, 0, nil)
	assert.ErrorIs(t, err, bigraph.ErrTooFewVertices)
}
