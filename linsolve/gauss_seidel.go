package linsolve

import "math"

// SolveGaussSeidel solves A·x = b iteratively with Gauss-Seidel and
// successive over-relaxation (SOR), returning the solution and the number
// of iterations used.
//
// Preconditions, checked before any work:
//   - opts.Omega strictly inside (0, 2), else ErrInvalidRelaxation;
//   - A strictly diagonally dominant, else ErrNotDiagonallyDominant
//     (convergence is not guaranteed otherwise, so the routine refuses to
//     run).
//
// Each sweep updates every unknown in order using the residual
//
//	Rᵢ = bᵢ − Σⱼ Aᵢⱼ·xⱼ
//
// computed with the most recently updated xⱼ for all j - the in-place,
// sequential update that distinguishes Gauss-Seidel from Jacobi - then
// applies the relaxed step xᵢ ← xᵢ + ω·Rᵢ/Aᵢᵢ. A near-zero diagonal is a
// hard ErrSingular failure. Iteration stops once the maximum absolute
// per-component change falls below opts.Tolerance.
//
// Exhausting MaxIterations is NOT an error: the best current estimate is
// returned with iterations == opts.MaxIterations, and the caller compares
// the count against the cap to judge convergence.
//
// A nil opts uses DefaultOptions(); zero-valued Tolerance/MaxIterations
// fields fall back to their defaults so a partially filled Options stays
// usable.
//
// Complexity: O(iterations·n²) time, O(n) extra space.
func SolveGaussSeidel(a [][]float64, b []float64, opts *Options) ([]float64, int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Tolerance <= 0 {
			o.Tolerance = DefaultTolerance
		}
		if o.MaxIterations <= 0 {
			o.MaxIterations = DefaultMaxIterations
		}
	}

	// ω outside (0, 2) may diverge; refuse it regardless of the matrix.
	if o.Omega <= 0 || o.Omega >= 2 {
		return nil, 0, ErrInvalidRelaxation
	}
	if err := validateSystem(a, b); err != nil {
		return nil, 0, err
	}
	if !IsDiagonallyDominant(a) {
		return nil, 0, ErrNotDiagonallyDominant
	}

	n := len(b)
	x, err := initialGuess(a, b, o.Guess)
	if err != nil {
		return nil, 0, err
	}

	prev := make([]float64, n)
	for iteration := 1; iteration <= o.MaxIterations; iteration++ {
		copy(prev, x)

		// One ordered sweep, newest values used immediately.
		for i := 0; i < n; i++ {
			if math.Abs(a[i][i]) < DefaultPivotTolerance {
				return nil, 0, ErrSingular
			}

			residual := b[i]
			for j := 0; j < n; j++ {
				residual -= a[i][j] * x[j]
			}
			x[i] += o.Omega * residual / a[i][i]
		}

		// Max absolute change across all unknowns this sweep.
		change := 0.0
		for i := 0; i < n; i++ {
			if d := math.Abs(x[i] - prev[i]); d > change {
				change = d
			}
		}
		if change < o.Tolerance {
			return x, iteration, nil
		}
	}

	// Best effort: not converged within the cap, caller decides.
	return x, o.MaxIterations, nil
}

// initialGuess seeds the solution vector according to the chosen strategy.
func initialGuess(a [][]float64, b []float64, guess InitialGuess) ([]float64, error) {
	x := make([]float64, len(b))
	if guess == GuessZero {
		return x, nil
	}

	// GuessDiagonal: each row solved in isolation, xᵢ = bᵢ/Aᵢᵢ.
	for i := range b {
		if math.Abs(a[i][i]) < DefaultPivotTolerance {
			return nil, ErrSingular
		}
		x[i] = b[i] / a[i][i]
	}

	return x, nil
}
