package aberth_test

import (
	"testing"

	"github.com/katalvlaran/polyroots/aberth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHornerEval_Known verifies the real evaluation path against the
// canonical degree-8 polynomial: P(2) = 18250.
func TestHornerEval_Known(t *testing.T) {
	got, err := aberth.HornerEval(testCoeffs, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 18250.0, got, 1e-9, "P(2) must equal 18250")
}

// TestHornerEvalC_Known verifies the complex evaluation path:
// P(1+2i) = 6080 + 9120i.
func TestHornerEvalC_Known(t *testing.T) {
	got, err := aberth.HornerEvalC(testCoeffs, complex(1, 2))
	require.NoError(t, err)
	assert.InDelta(t, 6080.0, real(got), 1e-9, "real part of P(1+2i)")
	assert.InDelta(t, 9120.0, imag(got), 1e-9, "imaginary part of P(1+2i)")
}

// TestHornerEval_Empty ensures both evaluators reject an empty coefficient
// slice with ErrEmptyCoefficients instead of panicking.
func TestHornerEval_Empty(t *testing.T) {
	_, err := aberth.HornerEval(nil, 1.0)
	assert.ErrorIs(t, err, aberth.ErrEmptyCoefficients, "real path must reject empty coeffs")

	_, err = aberth.HornerEvalC(nil, complex(1, 1))
	assert.ErrorIs(t, err, aberth.ErrEmptyCoefficients, "complex path must reject empty coeffs")
}

// TestHornerEval_Constant checks that a single coefficient evaluates to
// itself at any point (degree-0 polynomial).
func TestHornerEval_Constant(t *testing.T) {
	got, err := aberth.HornerEval([]float64{5}, 123.456)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got, "constant polynomial evaluates to its coefficient")

	gotC, err := aberth.HornerEvalC([]float64{5}, complex(-3, 7))
	require.NoError(t, err)
	assert.Equal(t, complex(5, 0), gotC)
}

// TestHornerEval_Linear checks the first multiply-accumulate step:
// (2x − 4) at x = 3 is 2.
func TestHornerEval_Linear(t *testing.T) {
	got, err := aberth.HornerEval([]float64{2, -4}, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-15)
}
