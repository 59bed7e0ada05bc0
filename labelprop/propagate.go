// SPDX-License-Identifier: MIT

package labelprop

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvprop/matrix"
)

// Propagate runs bipartite label propagation with a background context.
// See PropagateContext.
func Propagate(x, y matrix.Matrix, p Partition, opts ...Option) (*Result, error) {
	return PropagateContext(context.Background(), x, y, p, opts...)
}

// PropagateContext estimates the unlabeled rows of y by diffusing labels over x.
//
// Algorithm Outline:
//  1. Validate shapes, the partition and (unless WithTrustedInput) the numeric
//     preconditions. Nothing is computed on invalid input.
//  2. Copy x and y into gonum storage; build the four transition views
//     T_aubl, T_aubu, T_bual, T_buau and the labeled views Y_al, Y_bl.
//  3. For iteration k = 1..maxIter:
//     a. return ctx.Err() if the context is done;
//     b. Y_au' = L1(T_aubl·Y_bl + T_aubu·Y_bu), Y_bu' = L1(T_bual·Y_al + T_buau·Y_au),
//     both from the iteration k−1 snapshot;
//     c. delta = Σ|Y_au'−Y_au| + Σ|Y_bu'−Y_bu|;
//     d. delta < ε → StatusConverged with [Y_al; Y_au'; Y_bl; Y_bu'];
//     e. otherwise promote Y_au', Y_bu' and continue.
//  4. Budget spent → StatusExhausted, no matrix.
//
// Inputs are never modified.
//
// Errors:
//   - wrapped matrix sentinels (ErrNilMatrix, ErrDimensionMismatch, ErrBadShape,
//     ErrNaNInf, ErrNegativeEntry, ErrNotRowStochastic);
//   - ErrInvalidPartition, ErrSameTypeEdge;
//   - the context error, wrapped, when ctx is cancelled mid-loop.
func PropagateContext(ctx context.Context, x, y matrix.Matrix, p Partition, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)

	layout, err := validateInputs(x, y, p, o)
	if err != nil {
		return nil, err
	}
	gx, err := matrix.ToGonum(x)
	if err != nil {
		return nil, fmt.Errorf("labelprop: X: %w", err)
	}
	gy, err := matrix.ToGonum(y)
	if err != nil {
		return nil, fmt.Errorf("labelprop: Y: %w", err)
	}

	e := newEngine(gx, gy, layout, o.parallel)
	log := o.logger.WithFields(logrus.Fields{
		"nodes":       layout.N,
		"classes":     e.classes,
		"unlabeled_a": layout.UnlabeledA.Len(),
		"unlabeled_b": layout.UnlabeledB.Len(),
	})
	log.Debugf("label propagation started (epsilon %g, max iterations %d)", o.eps, o.maxIter)

	delta := math.Inf(1)
	for iter := 1; iter <= o.maxIter; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("labelprop: iteration %d: %w", iter, err)
		}
		if err = e.step(); err != nil {
			return nil, fmt.Errorf("labelprop: iteration %d: %w", iter, err)
		}
		delta = e.delta()
		if o.observer != nil {
			o.observer(iter, delta)
		}
		if delta < o.eps {
			labels, serr := matrix.StackGonum(e.classes, e.al, e.ua.result(), e.bl, e.ub.result())
			if serr != nil {
				return nil, fmt.Errorf("labelprop: assemble labels: %w", serr)
			}
			log.WithFields(logrus.Fields{"iterations": iter, "delta": delta}).Debug("label propagation converged")

			return &Result{Status: StatusConverged, Iterations: iter, Delta: delta, labels: labels}, nil
		}
		e.swap()
	}

	log.WithFields(logrus.Fields{"iterations": o.maxIter, "delta": delta}).Debug("label propagation did not converge")

	return &Result{Status: StatusExhausted, Iterations: o.maxIter, Delta: delta}, nil
}
