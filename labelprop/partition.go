// SPDX-License-Identifier: MIT

package labelprop

import "fmt"

// Range is the half-open row interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no rows.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether i lies in [Start, End).
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Partition describes how the N rows of X and Y split into node groups.
// Rows are ordered: labeled A, unlabeled A, labeled B, unlabeled B.
type Partition struct {
	Offset   int // number of type-A nodes
	LabeledA int // labeled type-A nodes, at the top of the A rows
	LabeledB int // labeled type-B nodes, at the top of the B rows
}

// Layout is a Partition resolved against N rows into four named ranges.
type Layout struct {
	N          int
	LabeledA   Range // [0, LabeledA)
	UnlabeledA Range // [LabeledA, Offset)
	LabeledB   Range // [Offset, Offset+LabeledB)
	UnlabeledB Range // [Offset+LabeledB, N)
}

// Validate checks the partition against n rows:
// 0 ≤ Offset ≤ n, 0 ≤ LabeledA ≤ Offset, 0 ≤ LabeledB ≤ n−Offset.
func (p Partition) Validate(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: node count %d is negative", ErrInvalidPartition, n)
	case p.Offset < 0 || p.Offset > n:
		return fmt.Errorf("%w: offset %d not in [0,%d]", ErrInvalidPartition, p.Offset, n)
	case p.LabeledA < 0 || p.LabeledA > p.Offset:
		return fmt.Errorf("%w: labeled A count %d not in [0,%d]", ErrInvalidPartition, p.LabeledA, p.Offset)
	case p.LabeledB < 0 || p.LabeledB > n-p.Offset:
		return fmt.Errorf("%w: labeled B count %d not in [0,%d]", ErrInvalidPartition, p.LabeledB, n-p.Offset)
	}

	return nil
}

// Layout validates p and returns the four ranges for n rows.
func (p Partition) Layout(n int) (Layout, error) {
	if err := p.Validate(n); err != nil {
		return Layout{}, err
	}
	lb := p.Offset + p.LabeledB

	return Layout{
		N:          n,
		LabeledA:   Range{0, p.LabeledA},
		UnlabeledA: Range{p.LabeledA, p.Offset},
		LabeledB:   Range{p.Offset, lb},
		UnlabeledB: Range{lb, n},
	}, nil
}

// TypeA returns the rows of all type-A nodes.
func (l Layout) TypeA() Range { return Range{0, l.UnlabeledA.End} }

// TypeB returns the rows of all type-B nodes.
func (l Layout) TypeB() Range { return Range{l.LabeledB.Start, l.N} }

// Labeled reports whether row i belongs to a labeled group.
func (l Layout) Labeled(i int) bool { return l.LabeledA.Contains(i) || l.LabeledB.Contains(i) }
