// Package aberth defines core types, configuration options and sentinel
// errors for the simultaneous root-finding drivers.
//
// Aberth's method refines all d root estimates of a degree-d polynomial at
// once. Each pass recomputes, per active root, the polynomial value, its
// derivative and a repulsion sum over the other estimates, then applies a
// corrected Newton step. A pass converges when the largest L1 residual it
// recorded drops below Options.Tol.
//
// Options:
//
//	– MaxIters: hard bound on refinement passes (default 2000).
//	– Tol:      pass-wide convergence threshold on the maximum residual
//	            (default 1e-12; must be ≥ 0).
//	– Workers:  goroutine fan-out bound for AberthParallel
//	            (default runtime.GOMAXPROCS(0); ignored by Aberth).
//	– Mode:     driver selected by Solve (Sequential or Parallel).
//
// Errors (sentinel):
//
//	– ErrEmptyCoefficients  if an evaluator receives no coefficients.
//	– ErrInvalidDegree      if fewer than two coefficients are supplied.
//	– ErrRootCountMismatch  if len(roots) != degree.
//	– ErrUnsupportedMode    if Solve receives an unknown Mode.
//	– ErrBadMaxIters / ErrBadTol / ErrBadWorkers (via panic) for invalid
//	  option values.
package aberth

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by the aberth package.
var (
	// ErrEmptyCoefficients indicates that an evaluator was called with an
	// empty coefficient slice.
	ErrEmptyCoefficients = errors.New("aberth: coefficient slice is empty")

	// ErrInvalidDegree indicates that fewer than two coefficients were
	// supplied, i.e. the polynomial degree is below 1 and there is no root
	// to find.
	ErrInvalidDegree = errors.New("aberth: polynomial degree must be at least 1")

	// ErrRootCountMismatch indicates that the caller-owned root slice does
	// not have exactly one entry per polynomial root (degree entries).
	ErrRootCountMismatch = errors.New("aberth: root slice length must equal the polynomial degree")

	// ErrUnsupportedMode indicates that Solve was configured with a Mode
	// value it does not recognize.
	ErrUnsupportedMode = errors.New("aberth: unsupported iteration mode")

	// ErrBadMaxIters indicates that MaxIters was set to zero or a negative
	// value, which would forbid any refinement pass.
	ErrBadMaxIters = errors.New("aberth: MaxIters must be positive")

	// ErrBadTol indicates that Tol was set to a negative value; a negative
	// threshold can never be met by a residual magnitude.
	ErrBadTol = errors.New("aberth: Tol must be non-negative")

	// ErrBadWorkers indicates that Workers was set to zero or a negative
	// value, which would leave the parallel driver without any goroutine.
	ErrBadWorkers = errors.New("aberth: Workers must be positive")
)

// Mode selects which iteration driver Solve dispatches to.
//
// Sequential – Gauss-Seidel refinement: roots are updated one at a time and
// updates from earlier indices are immediately visible to later indices in
// the same pass. Typically converges in fewer passes.
//
// Parallel – Jacobi refinement: every update of a pass is computed from one
// immutable snapshot taken before the pass, so per-root work is fanned out
// across worker goroutines. Neighbor values are one pass stale, so a few
// extra passes are expected.
type Mode int

const (
	// Sequential selects the in-place Gauss-Seidel driver (Aberth).
	Sequential Mode = iota

	// Parallel selects the snapshot-based Jacobi driver (AberthParallel).
	Parallel
)

const (
	// DefaultMaxIters bounds the number of refinement passes when the
	// caller does not override MaxIters.
	DefaultMaxIters = 2000

	// DefaultTol is the pass-wide convergence threshold applied to the
	// maximum L1 residual when the caller does not override Tol.
	DefaultTol = 1e-12

	// microTol freezes an individual root: once its L1 residual falls below
	// this bound the root is excluded from further correction work.
	microTol = 1e-15
)

// Options configures the behavior of both iteration drivers and of Solve.
//
// MaxIters – maximum number of refinement passes; must be > 0.
// Tol – convergence threshold for the pass-wide maximum residual; must be
// ≥ 0 (0 demands an exact zero residual).
// Workers – upper bound on concurrently running per-root tasks in
// AberthParallel; must be > 0 (Aberth ignores it).
// Mode – driver used by Solve; the direct drivers ignore it.
type Options struct {
	MaxIters int     // Hard bound on refinement passes
	Tol      float64 // Pass-wide maximum-residual threshold
	Workers  int     // Goroutine fan-out bound (parallel driver only)
	Mode     Mode    // Driver selected by Solve
}

// Option represents a functional option for configuring the drivers.
type Option func(*Options)

// WithMaxIters bounds the number of refinement passes.
// Must pass a positive value; zero or negative cause ErrBadMaxIters.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxIters.Error())
		}
		o.MaxIters = n
	}
}

// WithTol sets the pass-wide convergence threshold compared against the
// largest residual magnitude recorded in a pass.
// Must pass a non-negative value; negative values cause ErrBadTol.
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic(ErrBadTol.Error())
		}
		o.Tol = tol
	}
}

// WithWorkers bounds the number of concurrently running per-root tasks in
// AberthParallel. The sequential driver ignores this setting.
// Must pass a positive value; zero or negative cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithMode selects the driver Solve dispatches to. Unknown values are not
// rejected here; Solve returns ErrUnsupportedMode when routing.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - MaxIters: 2000
//   - Tol:      1e-12
//   - Workers:  runtime.GOMAXPROCS(0)
//   - Mode:     Sequential
func DefaultOptions() Options {
	return Options{
		MaxIters: DefaultMaxIters,
		Tol:      DefaultTol,
		Workers:  runtime.GOMAXPROCS(0),
		Mode:     Sequential,
	}
}

// buildOptions applies opts on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
