// Package aberth - unified dispatcher for the root-finding drivers.
//
// This file provides the canonical one-call entry point: seed the estimates
// with InitialGuesses, then route to the Mode-selected driver.
//
// Design principles:
//   - Deterministic: no randomness; seed placement follows the documented
//     principal branch.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Hot-path discipline: the dispatcher allocates the root slice once and
//     delegates; no hidden copies.
package aberth

// Solve computes all complex roots of the polynomial described by coeffs
// (real values, highest degree first): it places initial estimates via
// InitialGuesses and refines them with the driver selected by Options.Mode.
//
// Contracts:
//   - len(coeffs) ≥ 2; otherwise ErrInvalidDegree.
//   - coeffs[0] is assumed nonzero (precondition, not checked).
//
// Returns the refined root slice (length = degree), the zero-based index of
// the converging pass, the convergence flag, and an error for invalid input
// or an unrecognized Mode. Non-convergence is reported through the flag,
// never through err.
//
// Complexity: O(MaxIters · d²) time, O(d) space.
func Solve(coeffs []float64, opts ...Option) (roots []complex128, niter int, converged bool, err error) {
	o := buildOptions(opts)

	roots, err = InitialGuesses(coeffs)
	if err != nil {
		return nil, 0, false, err
	}

	switch o.Mode {
	case Sequential:
		niter, converged, err = Aberth(coeffs, roots, opts...)
	case Parallel:
		niter, converged, err = AberthParallel(coeffs, roots, opts...)
	default:
		return nil, 0, false, ErrUnsupportedMode
	}
	if err != nil {
		return nil, 0, false, err
	}

	return roots, niter, converged, nil
}
