package linsolve

import "math"

// SolveGauss solves A·x = b by Gaussian elimination with partial pivoting.
//
// At each elimination step k the rows k..n−1 are scanned for the best
// pivot under the chosen strategy - the scaled ratio |Aᵢₖ|/sᵢ (sᵢ being
// row i's maximum absolute entry, cached up front) or the plain absolute
// value - and the winning row is swapped into place along with its cached
// scale. A chosen pivot below tolerance means the system has no unique
// solution and the solve aborts; an entirely zero row is detected before
// elimination even starts (scaled strategy computes the scales eagerly).
// Back substitution then walks from the last row up, each division
// tolerance-guarded.
//
// tolerance ≤ 0 selects DefaultPivotTolerance. Inputs are copied; the
// caller's A and b are never mutated.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity: O(n³) time, O(n²) space for the working copy.
func SolveGauss(a [][]float64, b []float64, strategy PivotStrategy, tolerance float64) ([]float64, error) {
	if err := validateSystem(a, b); err != nil {
		return nil, err
	}
	if tolerance <= 0 {
		tolerance = DefaultPivotTolerance
	}

	// Work on private copies; elimination is destructive.
	m := cloneMatrix(a)
	rhs := cloneVector(b)
	n := len(rhs)

	// Scale vector for the scaled strategy: sᵢ = maxⱼ |A[i][j]|, computed
	// once. A zero row makes the matrix singular outright.
	var scale []float64
	if strategy == PivotScaled {
		scale = make([]float64, n)
		for i := 0; i < n; i++ {
			maxAbs := 0.0
			for j := 0; j < n; j++ {
				if v := math.Abs(m[i][j]); v > maxAbs {
					maxAbs = v
				}
			}
			if maxAbs < tolerance {
				return nil, ErrSingular
			}
			scale[i] = maxAbs
		}
	}

	// pivotScore ranks row i as a pivot candidate for column k.
	pivotScore := func(i, k int) float64 {
		if strategy == PivotScaled {
			if scale[i] > tolerance {
				return math.Abs(m[i][k]) / scale[i]
			}

			return 0.0
		}

		return math.Abs(m[i][k])
	}

	// Forward elimination to upper-triangular form.
	for k := 0; k < n-1; k++ {
		// Scan rows k..n−1 for the best-scoring pivot.
		best := pivotScore(k, k)
		bestRow := k
		for i := k + 1; i < n; i++ {
			if score := pivotScore(i, k); score > best {
				best = score
				bestRow = i
			}
		}

		// Swap the winning row (and its cached scale) into place.
		if bestRow != k {
			m[k], m[bestRow] = m[bestRow], m[k]
			rhs[k], rhs[bestRow] = rhs[bestRow], rhs[k]
			if strategy == PivotScaled {
				scale[k], scale[bestRow] = scale[bestRow], scale[k]
			}
		}

		if math.Abs(m[k][k]) < tolerance {
			return nil, ErrSingular
		}

		// Eliminate entries below the pivot.
		for i := k + 1; i < n; i++ {
			factor := m[i][k] / m[k][k]
			for j := k; j < n; j++ {
				m[i][j] -= factor * m[k][j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	// Back substitution from the last row to the first.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = rhs[i]
		for j := i + 1; j < n; j++ {
			x[i] -= m[i][j] * x[j]
		}
		if math.Abs(m[i][i]) < tolerance {
			return nil, ErrSingular
		}
		x[i] /= m[i][i]
	}

	return x, nil
}
