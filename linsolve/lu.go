package linsolve

import "math"

// LU computes the Doolittle factorization A = L·U, with L unit lower
// triangular and U upper triangular. The input is copied; fresh L and U
// are returned.
//
// Row i of U and column i of L are built from the standard recurrences
//
//	U[i][j] = A[i][j] − Σₖ L[i][k]·U[k][j]   (j ≥ i)
//	L[j][i] = (A[j][i] − Σₖ L[j][k]·U[k][i]) / U[i][i]   (j > i)
//
// The factorization only exists while no pivot collapses: any
// |U[i][i]| < DefaultPivotTolerance aborts with ErrSingular.
//
// Complexity: O(n³) time, O(n²) space.
func LU(a [][]float64) (l, u [][]float64, err error) {
	n := len(a)
	if n == 0 {
		return nil, nil, ErrDimensionMismatch
	}
	for _, row := range a {
		if len(row) != n {
			return nil, nil, ErrNonSquare
		}
	}

	l = zeroMatrix(n)
	u = zeroMatrix(n)

	for i := 0; i < n; i++ {
		// Row i of U, columns j ≥ i.
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[i][k] * u[k][j]
			}
			u[i][j] = a[i][j] - sum
		}

		// Pivot guard before L's column divides by U[i][i].
		if math.Abs(u[i][i]) < DefaultPivotTolerance {
			return nil, nil, ErrSingular
		}

		// Unit diagonal, then column i of L for rows j > i.
		l[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[j][k] * u[k][i]
			}
			l[j][i] = (a[j][i] - sum) / u[i][i]
		}
	}

	return l, u, nil
}

// forwardSubstitution solves L·y = b top-down. L's unit diagonal makes
// each step a plain subtraction, no division.
func forwardSubstitution(l [][]float64, b []float64) []float64 {
	n := len(b)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += l[i][j] * y[j]
		}
		y[i] = b[i] - sum
	}

	return y
}

// backwardSubstitution solves U·x = y bottom-up, dividing by U's diagonal.
// Diagonal entries below tolerance fail with ErrSingular.
func backwardSubstitution(u [][]float64, y []float64) ([]float64, error) {
	n := len(y)
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += u[i][j] * x[j]
		}
		if math.Abs(u[i][i]) < DefaultPivotTolerance {
			return nil, ErrSingular
		}
		x[i] = (y[i] - sum) / u[i][i]
	}

	return x, nil
}

// SolveLU solves A·x = b by Doolittle LU decomposition:
//
//  1. A = L·U
//  2. L·y = b  (forward substitution)
//  3. U·x = y  (backward substitution)
//
// It returns the solution together with both factors, letting callers
// reuse L and U for further right-hand sides or verify A ≈ L·U.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrSingular.
func SolveLU(a [][]float64, b []float64) (x []float64, l, u [][]float64, err error) {
	if err = validateSystem(a, b); err != nil {
		return nil, nil, nil, err
	}

	// Factorize a private copy; the caller's matrix stays untouched.
	l, u, err = LU(cloneMatrix(a))
	if err != nil {
		return nil, nil, nil, err
	}

	y := forwardSubstitution(l, cloneVector(b))
	x, err = backwardSubstitution(u, y)
	if err != nil {
		return nil, nil, nil, err
	}

	return x, l, u, nil
}
