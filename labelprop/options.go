// SPDX-License-Identifier: MIT

// Package labelprop: functional configuration for Propagate.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that resolves defaults.
package labelprop

import (
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the convergence threshold on the total L1 change.
	DefaultEpsilon = 1e-2

	// DefaultMaxIterations caps the number of update rounds.
	DefaultMaxIterations = 50000

	// DefaultRowSumTolerance bounds |rowsum−1| for stochastic rows and |x| for
	// entries of blocks that must be zero.
	DefaultRowSumTolerance = 1e-6

	// DefaultParallel runs the two group updates sequentially.
	DefaultParallel = false
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid = "labelprop: WithEpsilon: eps must be finite and > 0"
	panicMaxIterInvalid = "labelprop: WithMaxIterations: n must be >= 0"
	panicRowTolInvalid  = "labelprop: WithRowSumTolerance: tol must be finite and >= 0"
	panicLoggerNil      = "labelprop: WithLogger: logger must be non-nil"
)

// Observer is called after every iteration with its 1-based index and delta.
// It runs on the calling goroutine and must not retain engine state.
type Observer func(iteration int, delta float64)

// Option mutates Options. Options are applied in order; later ones win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64
	maxIter  int
	rowTol   float64
	parallel bool
	trusted  bool
	logger   logrus.FieldLogger
	observer Observer
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		maxIter:  DefaultMaxIterations,
		rowTol:   DefaultRowSumTolerance,
		parallel: DefaultParallel,
		logger:   logrus.StandardLogger(),
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the convergence threshold. Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the iteration cap. Zero is legal and makes every
// call that reaches the loop end exhausted. Panics on n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithRowSumTolerance sets the tolerance used by the input checks.
func WithRowSumTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRowTolInvalid)
	}

	return func(o *Options) { o.rowTol = tol }
}

// WithParallel computes the unlabeled-A and unlabeled-B updates concurrently.
// Results are identical to the sequential mode.
func WithParallel(on bool) Option {
	return func(o *Options) { o.parallel = on }
}

// WithTrustedInput skips the sign, row-sum and same-type-edge checks.
// Shapes, the partition and finiteness are still validated.
func WithTrustedInput() Option {
	return func(o *Options) { o.trusted = true }
}

// WithLogger routes debug output to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithObserver installs a per-iteration hook. nil removes it.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.observer = fn }
}
