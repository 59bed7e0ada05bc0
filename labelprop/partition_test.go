// SPDX-License-Identifier: MIT

package labelprop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprop/labelprop"
)

// TestPartition_Layout checks the four ranges and the derived helpers.
func TestPartition_Layout(t *testing.T) {
	l, err := labelprop.Partition{Offset: 5, LabeledA: 2, LabeledB: 1}.Layout(9)
	require.NoError(t, err)

	assert.Equal(t, labelprop.Range{Start: 0, End: 2}, l.LabeledA)
	assert.Equal(t, labelprop.Range{Start: 2, End: 5}, l.UnlabeledA)
	assert.Equal(t, labelprop.Range{Start: 5, End: 6}, l.LabeledB)
	assert.Equal(t, labelprop.Range{Start: 6, End: 9}, l.UnlabeledB)
	assert.Equal(t, labelprop.Range{Start: 0, End: 5}, l.TypeA())
	assert.Equal(t, labelprop.Range{Start: 5, End: 9}, l.TypeB())

	assert.True(t, l.Labeled(1))
	assert.False(t, l.Labeled(2))
	assert.True(t, l.Labeled(5))
	assert.False(t, l.Labeled(8))
}

// TestPartition_Edges covers the boundary values that must be accepted.
func TestPartition_Edges(t *testing.T) {
	for _, p := range []labelprop.Partition{
		{Offset: 0},                           // only type B
		{Offset: 4},                           // only type A
		{Offset: 4, LabeledA: 4},              // everything labeled, no B
		{Offset: 0, LabeledB: 4},              // everything labeled, no A
		{Offset: 2, LabeledA: 2, LabeledB: 2}, // no unlabeled node
	} {
		l, err := p.Layout(4)
		require.NoError(t, err, "%+v", p)
		total := l.LabeledA.Len() + l.UnlabeledA.Len() + l.LabeledB.Len() + l.UnlabeledB.Len()
		assert.Equal(t, 4, total, "ranges must tile all rows for %+v", p)
	}
}

// TestPartition_Invalid rejects every inconsistent combination.
func TestPartition_Invalid(t *testing.T) {
	cases := []struct {
		p labelprop.Partition
		n int
	}{
		{labelprop.Partition{Offset: 1}, -1},
		{labelprop.Partition{Offset: -1}, 3},
		{labelprop.Partition{Offset: 4}, 3},
		{labelprop.Partition{Offset: 2, LabeledA: -1}, 3},
		{labelprop.Partition{Offset: 2, LabeledA: 3}, 3},
		{labelprop.Partition{Offset: 2, LabeledB: -1}, 3},
		{labelprop.Partition{Offset: 2, LabeledB: 2}, 3},
	}
	for _, tc := range cases {
		_, err := tc.p.Layout(tc.n)
		assert.ErrorIs(t, err, labelprop.ErrInvalidPartition, "%+v n=%d", tc.p, tc.n)
	}
}

// TestRange covers the small Range helpers.
func TestRange(t *testing.T) {
	r := labelprop.Range{Start: 2, End: 4}
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(4))
	assert.Equal(t, "[2,4)", r.String())
	assert.True(t, labelprop.Range{Start: 3, End: 3}.Empty())
}
