package aberth

// Aberth refines all root estimates in place using Gauss-Seidel passes:
// within one pass the roots are visited in ascending index order and every
// update is immediately visible to later indices, so later roots benefit
// from fresher neighbor estimates at the cost of strict sequencing.
//
// Per pass, for each non-frozen index i:
//   - evaluate P(z_i) and record its L1 residual for the pass maximum;
//   - freeze index i when the residual falls below the 1e-15 micro-tolerance
//     (its freezing residual still counts toward the pass maximum);
//   - otherwise apply z_i ← z_i − P(z_i)/(P′(z_i) − Σ_{j≠i} P(z_i)/(z_i−z_j)),
//     skipping the update this pass when the denominator is exactly zero.
//
// The pass converges when its maximum recorded residual drops below
// Options.Tol; the returned count is the zero-based index of that pass.
// Exhausting MaxIters is not an error: (MaxIters, false, nil) is returned
// and roots holds the best current estimates.
//
// Contracts:
//   - len(coeffs) ≥ 2, highest degree first; otherwise ErrInvalidDegree.
//   - len(roots) == degree; otherwise ErrRootCountMismatch.
//   - roots is caller-owned and exclusively mutated here; index identity is
//     stable across passes.
//
// Complexity: O(MaxIters · d²) time, O(d) extra space.
func Aberth(coeffs []float64, roots []complex128, opts ...Option) (niter int, converged bool, err error) {
	if len(coeffs) < 2 {
		return 0, false, ErrInvalidDegree
	}
	degree := len(coeffs) - 1
	if len(roots) != degree {
		return 0, false, ErrRootCountMismatch
	}
	o := buildOptions(opts)

	var (
		deriv  = derivativeCoeffs(coeffs)
		frozen = make([]bool, degree)
	)

	var (
		pass, i, j int
		passTol    float64
		zi, pz, dn complex128
		resid      float64
	)
	for pass = 0; pass < o.MaxIters; pass++ {
		passTol = 0

		for i = 0; i < degree; i++ {
			if frozen[i] {
				continue
			}

			zi = roots[i]
			pz = hornerC(coeffs, zi)
			resid = l1norm(pz)
			if resid > passTol {
				passTol = resid
			}
			if resid < microTol {
				// Frozen from now on; excluded from all further passes.
				frozen[i] = true

				continue
			}

			// Aberth correction denominator over the current root set:
			// indices below i already carry this pass's update.
			dn = hornerC(deriv, zi)
			for j = 0; j < degree; j++ {
				if j == i {
					continue
				}
				dn -= pz / (zi - roots[j])
			}
			if dn == 0 {
				// Degenerate denominator: keep the estimate for this pass.
				// The recorded residual prevents false convergence.
				continue
			}

			roots[i] = zi - pz/dn
		}

		if passTol < o.Tol {
			return pass, true, nil
		}
	}

	return o.MaxIters, false, nil
}
