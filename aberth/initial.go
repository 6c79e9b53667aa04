package aberth

import (
	"math"
	"math/cmplx"
)

// twoPi is the full turn used for uniform angular spacing of the seeds.
const twoPi = 2 * math.Pi

// seedOffset rotates every seed by a quarter step so that no initial
// estimate lands exactly on the real axis; real-coefficient polynomials
// with symmetric root layouts stagnate otherwise.
const seedOffset = 0.25

// InitialGuesses produces one complex seed estimate per root of the
// polynomial described by coeffs (highest degree first), placed on a circle
// around a centroid estimate:
//
//  1. center = −c₁ / (c₀·d), a linear estimate of the root centroid.
//  2. radius point = principal d-th root of −P(center), computed by explicit
//     polar decomposition: magnitude |−P(center)|^(1/d), phase
//     arg(−P(center))/d with arg taken on the principal branch (−π, π].
//  3. seed k = center + radiusPoint · (cos θ_k + i·sin θ_k) with
//     θ_k = (2π/d)·(0.25 + k).
//
// Contracts:
//   - len(coeffs) ≥ 2; otherwise ErrInvalidDegree.
//   - coeffs[0] is assumed nonzero (precondition, not checked).
//   - The principal branch is part of the contract: seed placement is fully
//     deterministic and covered by tests.
//
// Complexity: O(d) time, O(d) space.
func InitialGuesses(coeffs []float64) ([]complex128, error) {
	if len(coeffs) < 2 {
		return nil, ErrInvalidDegree
	}

	var (
		degree = len(coeffs) - 1
		d      = float64(degree)
		center = -coeffs[1] / (coeffs[0] * d)
		pc     = horner(coeffs, center)
	)

	// Explicit polar decomposition keeps the branch choice deterministic;
	// a generic complex power primitive may follow a different convention.
	var (
		target = complex(-pc, 0)
		radius = cmplx.Rect(math.Pow(cmplx.Abs(target), 1/d), cmplx.Phase(target)/d)
	)

	var (
		step  = twoPi / d
		seeds = make([]complex128, degree)
		theta float64
	)
	for k := 0; k < degree; k++ {
		theta = step * (seedOffset + float64(k))
		seeds[k] = complex(center, 0) + radius*complex(math.Cos(theta), math.Sin(theta))
	}

	return seeds, nil
}
