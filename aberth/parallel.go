package aberth

import (
	"golang.org/x/sync/errgroup"
)

// AberthParallel refines all root estimates in place using Jacobi passes:
// before each pass the whole root set is snapshotted, and every residual,
// derivative and repulsion-sum computation of that pass reads exclusively
// from the snapshot. Per-root work is therefore independent and is fanned
// out across at most Options.Workers goroutines.
//
// Ownership discipline within a pass:
//   - task i writes only roots[i], frozen[i] and residuals[i];
//   - the snapshot is never mutated while tasks run;
//   - errgroup.Wait is the full barrier separating compute from the
//     pass-tolerance check and the next snapshot.
//
// The pass maximum folds active-root residuals only: a root freezing in the
// current pass (residual below the 1e-15 micro-tolerance) contributes
// nothing. Update formula, zero-denominator policy, stopping rule and the
// zero-based pass count match Aberth; because neighbor values are one pass
// stale, a few extra passes relative to the sequential driver are expected.
//
// Contracts:
//   - len(coeffs) ≥ 2, highest degree first; otherwise ErrInvalidDegree.
//   - len(roots) == degree; otherwise ErrRootCountMismatch.
//   - roots is caller-owned; do not touch it concurrently from outside.
//
// Complexity: O(MaxIters · d²) work, O(d) extra space (snapshot, residuals,
// freeze flags, all reused across passes).
func AberthParallel(coeffs []float64, roots []complex128, opts ...Option) (niter int, converged bool, err error) {
	if len(coeffs) < 2 {
		return 0, false, ErrInvalidDegree
	}
	degree := len(coeffs) - 1
	if len(roots) != degree {
		return 0, false, ErrRootCountMismatch
	}
	o := buildOptions(opts)

	var (
		deriv     = derivativeCoeffs(coeffs)
		frozen    = make([]bool, degree)
		snapshot  = make([]complex128, degree)
		residuals = make([]float64, degree)
	)

	for pass := 0; pass < o.MaxIters; pass++ {
		copy(snapshot, roots)
		for i := range residuals {
			// Negative marks "no contribution": frozen or freezing roots.
			residuals[i] = -1
		}

		var g errgroup.Group
		g.SetLimit(o.Workers)

		for i := 0; i < degree; i++ {
			if frozen[i] {
				continue
			}

			g.Go(func() error {
				var (
					zi    = snapshot[i]
					pz    = hornerC(coeffs, zi)
					resid = l1norm(pz)
				)
				if resid < microTol {
					frozen[i] = true

					return nil
				}
				residuals[i] = resid

				dn := hornerC(deriv, zi)
				for j := 0; j < degree; j++ {
					if j == i {
						continue
					}
					dn -= pz / (zi - snapshot[j])
				}
				if dn == 0 {
					return nil
				}

				roots[i] = zi - pz/dn

				return nil
			})
		}

		// Barrier: no pass pipelining, the snapshot stays immutable until
		// every task of the pass has finished.
		_ = g.Wait()

		passTol := 0.0
		for i := 0; i < degree; i++ {
			if residuals[i] > passTol {
				passTol = residuals[i]
			}
		}
		if passTol < o.Tol {
			return pass, true, nil
		}
	}

	return o.MaxIters, false, nil
}
