package linsolve

import "math"

// validateSystem enforces the shared solver contract: a non-empty square
// matrix with a matching right-hand side.
func validateSystem(a [][]float64, b []float64) error {
	n := len(a)
	if n == 0 || len(b) == 0 {
		return ErrDimensionMismatch
	}
	for _, row := range a {
		if len(row) != n {
			return ErrNonSquare
		}
	}
	if len(b) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// cloneMatrix deep-copies a row-major matrix so in-place elimination never
// touches caller-owned data.
func cloneMatrix(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// cloneVector copies a vector for the same reason.
func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// zeroMatrix allocates an n×n matrix of zeros.
func zeroMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}

// IsDiagonallyDominant reports whether every row's diagonal magnitude
// strictly exceeds the sum of the row's off-diagonal magnitudes. Strict
// dominance is a sufficient condition for Gauss-Seidel convergence, which
// is why SolveGaussSeidel demands it. Non-square input reports false.
//
// Complexity: O(n²).
func IsDiagonallyDominant(a [][]float64) bool {
	n := len(a)
	for i, row := range a {
		if len(row) != n {
			return false
		}
		offDiag := 0.0
		for j, v := range row {
			if j != i {
				offDiag += math.Abs(v)
			}
		}
		if math.Abs(row[i]) <= offDiag {
			return false
		}
	}

	return n > 0
}
