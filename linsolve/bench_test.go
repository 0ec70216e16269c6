package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/interpol/linsolve"
)

// dominantSystem builds an n×n strictly diagonally dominant system with a
// deterministic fill, so every solver in the package accepts it.
func dominantSystem(n int) ([][]float64, []float64) {
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		rowSum := 0.0
		for j := 0; j < n; j++ {
			if i != j {
				a[i][j] = 1.0 / float64(i+j+2) // small, predictable off-diagonal
				rowSum += a[i][j]
			}
		}
		a[i][i] = rowSum + 1.0 // strict dominance by margin 1
		b[i] = float64(i + 1)
	}

	return a, b
}

// benchmarkGauss runs Gaussian elimination on an n×n system.
func benchmarkGauss(b *testing.B, n int, strategy linsolve.PivotStrategy) {
	a, rhs := dominantSystem(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := linsolve.SolveGauss(a, rhs, strategy, 0); err != nil {
			b.Fatalf("SolveGauss failed: %v", err)
		}
	}
}

// BenchmarkSolveGauss_Scaled_50 benchmarks scaled pivoting on a 50×50 system.
func BenchmarkSolveGauss_Scaled_50(b *testing.B) {
	benchmarkGauss(b, 50, linsolve.PivotScaled)
}

// BenchmarkSolveGauss_Absolute_50 benchmarks absolute pivoting on 50×50.
func BenchmarkSolveGauss_Absolute_50(b *testing.B) {
	benchmarkGauss(b, 50, linsolve.PivotAbsolute)
}

// BenchmarkSolveLU_50 benchmarks the Doolittle factorization route on 50×50.
func BenchmarkSolveLU_50(b *testing.B) {
	a, rhs := dominantSystem(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := linsolve.SolveLU(a, rhs); err != nil {
			b.Fatalf("SolveLU failed: %v", err)
		}
	}
}

// BenchmarkSolveGaussSeidel_50 benchmarks the iterative route on the same
// dominant 50×50 system with default options.
func BenchmarkSolveGaussSeidel_50(b *testing.B) {
	a, rhs := dominantSystem(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := linsolve.SolveGaussSeidel(a, rhs, nil); err != nil {
			b.Fatalf("SolveGaussSeidel failed: %v", err)
		}
	}
}
