package aberth_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/polyroots/aberth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCoeffs is the canonical well-conditioned degree-8 palindromic
// polynomial used across the package tests:
// 10x⁸ + 34x⁷ + 75x⁶ + 94x⁵ + 150x⁴ + 94x³ + 75x² + 34x + 10.
var testCoeffs = []float64{10, 34, 75, 94, 150, 94, 75, 34, 10}

// polyFromRoots expands Π(x − r_k) into real coefficients, highest degree
// first, via repeated convolution with the linear factor (x − r).
func polyFromRoots(rts ...float64) []float64 {
	coeffs := []float64{1}
	for _, r := range rts {
		next := make([]float64, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= r * c
		}
		coeffs = next
	}

	return coeffs
}

// unitCircleCoeffs returns the coefficients of x^d − 1, whose d roots are
// uniformly spread on the unit circle.
func unitCircleCoeffs(d int) []float64 {
	coeffs := make([]float64, d+1)
	coeffs[0] = 1
	coeffs[d] = -1

	return coeffs
}

// matchUnordered asserts that got and want describe the same unordered root
// set: every wanted root has exactly one estimate within tol.
func matchUnordered(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want), "root set sizes must agree")

	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for j, g := range got {
			if !used[j] && cmplx.Abs(w-g) < tol {
				used[j] = true
				found = true

				break
			}
		}
		assert.Truef(t, found, "no estimate within %g of %v (got %v)", tol, w, got)
	}
}

// maxResidual returns the largest L1 residual of the estimates.
func maxResidual(t *testing.T, coeffs []float64, roots []complex128) float64 {
	t.Helper()

	var worst float64
	for _, z := range roots {
		pz, err := aberth.HornerEvalC(coeffs, z)
		require.NoError(t, err)
		if r := l1(pz); r > worst {
			worst = r
		}
	}

	return worst
}

// l1 mirrors the residual norm used by the drivers.
func l1(z complex128) float64 {
	re, im := real(z), imag(z)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}

	return re + im
}
