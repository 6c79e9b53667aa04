// Package aberth provides a precise, high-performance implementation of
// Aberth's method: simultaneous refinement of all complex roots of a
// single-variable polynomial with real coefficients.
//
// Overview:
//
//   - Every root estimate receives a Newton step whose denominator is
//     corrected by a mutual-repulsion term, keeping distinct estimates from
//     collapsing onto the same root:
//
//	              P(z_i)
//	z_i ← z_i - ─────────────────────────────
//	            P′(z_i) - Σ_{j≠i} P(z_i)/(z_i-z_j)
//
//   - Estimates are seeded on a circle around the centroid estimate
//     −c₁/(c₀·d), with radius and rotation taken from the principal d-th
//     root of −P(center). The quarter-turn angular offset keeps seeds off
//     the real axis, avoiding symmetry-induced stagnation.
//   - Two functionally equivalent drivers are provided: Aberth (Gauss-Seidel,
//     each update immediately visible to later indices in the same pass) and
//     AberthParallel (Jacobi, every update of a pass computed from one
//     immutable snapshot, fanned out across worker goroutines).
//
// When to use:
//
//   - Whenever you need all roots of one polynomial at once — filter design,
//     stability analysis, eigenvalue work via characteristic polynomials.
//   - Aberth for low degrees or single-threaded contexts; AberthParallel for
//     high degrees where the O(d²) repulsion sum per pass dominates.
//
// Key features:
//
//   - Functional options (WithMaxIters, WithTol, WithWorkers, WithMode)
//     layered over DefaultOptions; defaults: MaxIters=2000, Tol=1e-12.
//   - A per-root micro-tolerance (1e-15 on the L1 residual) freezes roots
//     individually; frozen roots are excluded from further correction work.
//   - Solve chains seeding and the Mode-selected driver in one call.
//
// Convergence accounting:
//
//   - A pass records the L1 residual |Re P(z_i)| + |Im P(z_i)| of each root
//     it touches; the pass converges when the maximum recorded residual
//     falls below Tol.
//   - The sequential driver folds the residual of a root freezing in the
//     current pass into the pass maximum; the parallel driver folds only
//     active-root residuals. Both freeze the root either way, so the two
//     drivers may report different pass counts for the same tolerance —
//     Jacobi updates see neighbor values one pass stale and generally need
//     a few extra passes. Expected behavior, not a defect.
//   - The returned pass count is the zero-based index of the converging
//     pass: a root set that is already converged reports 0.
//
// Numeric policy:
//
//   - An exactly-zero correction denominator skips that root's update for
//     the pass; its residual still feeds the pass maximum, so a degenerate
//     index can never fake convergence. Near-zero denominators are accepted
//     and produce a large (but finite) step.
//   - Non-convergence within MaxIters is not an error: the drivers return
//     (MaxIters, false) and leave the best current estimates in place.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyCoefficients:
//     Returned by HornerEval / HornerEvalC when the coefficient slice is empty.
//   - ErrInvalidDegree:
//     Returned when fewer than two coefficients are supplied (degree < 1).
//   - ErrRootCountMismatch:
//     Returned when len(roots) differs from the polynomial degree.
//   - ErrUnsupportedMode:
//     Returned by Solve for an unrecognized Mode value.
//   - ErrBadMaxIters / ErrBadTol / ErrBadWorkers:
//     Raised (via panic) by option constructors on invalid configuration.
//
// API reference:
//
//	func HornerEval(coeffs []float64, x float64) (float64, error)
//	func HornerEvalC(coeffs []float64, z complex128) (complex128, error)
//	func InitialGuesses(coeffs []float64) ([]complex128, error)
//	func Aberth(coeffs []float64, roots []complex128, opts ...Option) (int, bool, error)
//	func AberthParallel(coeffs []float64, roots []complex128, opts ...Option) (int, bool, error)
//	func Solve(coeffs []float64, opts ...Option) ([]complex128, int, bool, error)
//
//	  - coeffs: real coefficients, highest degree first, len ≥ 2; the leading
//	            coefficient is assumed nonzero (precondition, not checked).
//	  - roots:  caller-owned estimates, len = degree; refined in place.
//	            Index identity is stable: index i tracks the same root lineage
//	            across passes, never a sorted position.
//
// Performance and complexity:
//
//   - Time:  O(MaxIters · d²) — each pass evaluates P and P′ (O(d)) and the
//     repulsion sum (O(d)) for each of d roots.
//   - Space: O(d) beyond the caller's root slice (derivative coefficients,
//     freeze flags; the parallel driver adds one snapshot and one residual
//     slice, reused across passes).
//
// Thread safety:
//
//   - The root slice is exclusively mutated by whichever driver is invoked;
//     do not read or write it concurrently from outside.
//   - Inside AberthParallel each worker owns exactly one root slot, one
//     freeze flag and one residual cell, and reads only the pass snapshot;
//     a full barrier separates passes, so no locking is required.
//
// See also:
//
//   - InitialGuesses for the documented principal-branch seeding contract.
//
// Thanks for choosing polyroots! If you spot any issue or have suggestions,
// please open an issue or PR on GitHub.
package aberth
