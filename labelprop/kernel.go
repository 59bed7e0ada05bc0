// SPDX-License-Identifier: MIT

// Package labelprop - gonum working set and the per-iteration kernel.
//
// Storage:
//   - X and Y are copied once into *mat.Dense; transition blocks and labeled
//     groups are zero-copy Slice views into those copies.
//   - Each unlabeled group owns three compact buffers (cur, next, scratch).
//     Compact means Stride == Cols, so RawMatrix().Data covers exactly the group.
//   - A block whose row or column range is empty is a nil mat.Matrix and
//     contributes nothing; gonum cannot represent zero-length views.

package labelprop

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// view returns the rows × cols Slice of m, or nil when either range is empty.
func view(m *mat.Dense, rows, cols Range) mat.Matrix {
	if rows.Empty() || cols.Empty() {
		return nil
	}

	return m.Slice(rows.Start, rows.End, cols.Start, cols.End)
}

// transitions holds the four cross-type blocks of X.
type transitions struct {
	aubl mat.Matrix // unlabeled A → labeled B
	aubu mat.Matrix // unlabeled A → unlabeled B
	bual mat.Matrix // unlabeled B → labeled A
	buau mat.Matrix // unlabeled B → unlabeled A
}

func newTransitions(x *mat.Dense, l Layout) transitions {
	return transitions{
		aubl: view(x, l.UnlabeledA, l.LabeledB),
		aubu: view(x, l.UnlabeledA, l.UnlabeledB),
		bual: view(x, l.UnlabeledB, l.LabeledA),
		buau: view(x, l.UnlabeledB, l.UnlabeledA),
	}
}

// group is the working state of one unlabeled row block.
type group struct {
	cur, next, scratch *mat.Dense
}

// newGroup copies rows of y into a compact current buffer and allocates the
// next and scratch buffers. It returns nil for an empty range.
func newGroup(y *mat.Dense, rows Range) *group {
	if rows.Empty() {
		return nil
	}
	_, c := y.Dims()

	return &group{
		cur:     mat.DenseCopyOf(y.Slice(rows.Start, rows.End, 0, c)),
		next:    mat.NewDense(rows.Len(), c, nil),
		scratch: mat.NewDense(rows.Len(), c, nil),
	}
}

// current returns the current estimate as a mat.Matrix, nil for an absent group.
func (g *group) current() mat.Matrix {
	if g == nil {
		return nil
	}

	return g.cur
}

// update sets next = L1(tl·yl + tu·yu). Absent terms are skipped.
func (g *group) update(tl, yl, tu, yu mat.Matrix) {
	if g == nil {
		return
	}
	g.next.Zero()
	if tl != nil && yl != nil {
		g.scratch.Mul(tl, yl)
		g.next.Add(g.next, g.scratch)
	}
	if tu != nil && yu != nil {
		g.scratch.Mul(tu, yu)
		g.next.Add(g.next, g.scratch)
	}
	normalizeRowsL1(g.next)
}

// change returns Σ|next − cur| over the group.
func (g *group) change() float64 {
	if g == nil {
		return 0
	}

	return l1Distance(g.next, g.cur)
}

// swap promotes next to cur.
func (g *group) swap() {
	if g == nil {
		return
	}
	g.cur, g.next = g.next, g.cur
}

// result returns the freshly computed rows, nil for an absent group.
func (g *group) result() mat.Matrix {
	if g == nil {
		return nil
	}

	return g.next
}

// normalizeRowsL1 divides every row of m by Σ|m_ij| in place; zero rows stay zero.
func normalizeRowsL1(m *mat.Dense) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		s := floats.Norm(row, 1)
		if s == 0 {
			continue
		}
		for j := range row {
			row[j] /= s
		}
	}
}

// l1Distance returns Σ|a_ij − b_ij| for two compact matrices of the same shape.
func l1Distance(a, b *mat.Dense) float64 {
	return floats.Distance(a.RawMatrix().Data, b.RawMatrix().Data, 1)
}

// engine is the private working set of one propagation call.
type engine struct {
	t        transitions
	al, bl   mat.Matrix // labeled views, nil when empty
	ua, ub   *group     // unlabeled working state, nil when empty
	classes  int
	parallel bool
}

func newEngine(x, y *mat.Dense, l Layout, parallel bool) *engine {
	_, c := y.Dims()

	return &engine{
		t:        newTransitions(x, l),
		al:       view(y, l.LabeledA, Range{0, c}),
		bl:       view(y, l.LabeledB, Range{0, c}),
		ua:       newGroup(y, l.UnlabeledA),
		ub:       newGroup(y, l.UnlabeledB),
		classes:  c,
		parallel: parallel,
	}
}

func (e *engine) updateA() { e.ua.update(e.t.aubl, e.bl, e.t.aubu, e.ub.current()) }

func (e *engine) updateB() { e.ub.update(e.t.bual, e.al, e.t.buau, e.ua.current()) }

// step computes both next buffers from the same current snapshot.
// The updates only read cur buffers and write their own next/scratch buffers,
// so running them concurrently is race-free.
func (e *engine) step() error {
	if !e.parallel || e.ua == nil || e.ub == nil {
		e.updateA()
		e.updateB()

		return nil
	}
	var g errgroup.Group
	g.Go(func() error { e.updateA(); return nil })
	g.Go(func() error { e.updateB(); return nil })

	return g.Wait()
}

// delta is the convergence metric of the last step.
func (e *engine) delta() float64 { return e.ua.change() + e.ub.change() }

func (e *engine) swap() {
	e.ua.swap()
	e.ub.swap()
}
