package aberth_test

import (
	"testing"

	"github.com/katalvlaran/polyroots/aberth"
)

// benchmarkDriver seeds fresh estimates each iteration (the drivers mutate
// them in place) and runs the selected driver to convergence.
func benchmarkDriver(b *testing.B, coeffs []float64, mode aberth.Mode) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seeds, err := aberth.InitialGuesses(coeffs)
		if err != nil {
			b.Fatalf("InitialGuesses failed: %v", err)
		}

		switch mode {
		case aberth.Sequential:
			_, _, err = aberth.Aberth(coeffs, seeds)
		case aberth.Parallel:
			_, _, err = aberth.AberthParallel(coeffs, seeds)
		}
		if err != nil {
			b.Fatalf("driver failed: %v", err)
		}
	}
}

// BenchmarkAberth_Degree8 benchmarks the sequential driver on the canonical
// degree-8 polynomial.
func BenchmarkAberth_Degree8(b *testing.B) {
	benchmarkDriver(b, testCoeffs, aberth.Sequential)
}

// BenchmarkAberthParallel_Degree8 benchmarks the Jacobi driver on the same
// polynomial; at this size goroutine fan-out overhead dominates.
func BenchmarkAberthParallel_Degree8(b *testing.B) {
	benchmarkDriver(b, testCoeffs, aberth.Parallel)
}

// BenchmarkAberth_Degree64 benchmarks the sequential driver on x⁶⁴ − 1,
// where the O(d²) repulsion sum starts to matter.
func BenchmarkAberth_Degree64(b *testing.B) {
	benchmarkDriver(b, unitCircleCoeffs(64), aberth.Sequential)
}

// BenchmarkAberthParallel_Degree64 benchmarks the Jacobi driver on x⁶⁴ − 1.
func BenchmarkAberthParallel_Degree64(b *testing.B) {
	benchmarkDriver(b, unitCircleCoeffs(64), aberth.Parallel)
}
