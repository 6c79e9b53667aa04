package aberth

import "math"

// HornerEval evaluates the polynomial described by coeffs (highest degree
// first) at the real point x using left-to-right multiply-accumulate.
//
// Contracts:
//   - coeffs must be non-empty; an empty slice yields ErrEmptyCoefficients.
//   - No side effects; coeffs is never modified.
//
// Complexity: O(n) time, O(1) space.
func HornerEval(coeffs []float64, x float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyCoefficients
	}

	return horner(coeffs, x), nil
}

// HornerEvalC evaluates the polynomial described by coeffs (real, highest
// degree first) at the complex point z. Coefficients are lifted to complex
// with zero imaginary part; accumulation is identical to HornerEval.
//
// Contracts:
//   - coeffs must be non-empty; an empty slice yields ErrEmptyCoefficients.
//
// Complexity: O(n) time, O(1) space.
func HornerEvalC(coeffs []float64, z complex128) (complex128, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyCoefficients
	}

	return hornerC(coeffs, z), nil
}

// horner is the validated real fast path: res ← res·x + c per coefficient.
func horner(coeffs []float64, x float64) float64 {
	res := coeffs[0]
	for _, c := range coeffs[1:] {
		res = res*x + c
	}

	return res
}

// hornerC is the validated complex fast path.
func hornerC(coeffs []float64, z complex128) complex128 {
	res := complex(coeffs[0], 0)
	for _, c := range coeffs[1:] {
		res = res*z + complex(c, 0)
	}

	return res
}

// l1norm returns |Re z| + |Im z|, the residual magnitude used as the local
// convergence signal by both drivers.
func l1norm(z complex128) float64 {
	return math.Abs(real(z)) + math.Abs(imag(z))
}

// derivativeCoeffs derives the Horner-compatible coefficient layout of P′
// from coeffs: entry i = coeffs[i] · (degree − i), for i in [0, degree).
// Computed once at driver entry and constant thereafter.
//
// Contracts:
//   - len(coeffs) ≥ 2 (validated by the callers).
//
// Complexity: O(n) time, O(n) space.
func derivativeCoeffs(coeffs []float64) []float64 {
	var (
		degree = len(coeffs) - 1
		pb     = make([]float64, degree)
	)
	for i := 0; i < degree; i++ {
		pb[i] = coeffs[i] * float64(degree-i)
	}

	return pb
}
