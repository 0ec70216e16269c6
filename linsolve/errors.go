package linsolve

import "errors"

// Sentinel errors returned by the dense solvers. Preconditions are checked
// eagerly and violations surface immediately at the point of detection;
// callers match via errors.Is.
var (
	// ErrNonSquare indicates the coefficient matrix is not square (or has a
	// ragged row).
	ErrNonSquare = errors.New("linsolve: matrix is not square")

	// ErrDimensionMismatch indicates the right-hand side length does not
	// match the matrix dimension, or an empty system was supplied.
	ErrDimensionMismatch = errors.New("linsolve: matrix and vector dimensions differ")

	// ErrSingular indicates a pivot (or diagonal entry) collapsed below
	// tolerance: the matrix is singular or too ill-conditioned to solve.
	ErrSingular = errors.New("linsolve: matrix is singular or ill-conditioned")

	// ErrInvalidRelaxation indicates an SOR relaxation factor outside the
	// open interval (0, 2), for which convergence theory gives no guarantee.
	ErrInvalidRelaxation = errors.New("linsolve: relaxation factor must lie strictly inside (0, 2)")

	// ErrNotDiagonallyDominant indicates the Gauss-Seidel precondition
	// failed: without strict diagonal dominance convergence is not
	// guaranteed, so the routine refuses to iterate.
	ErrNotDiagonallyDominant = errors.New("linsolve: matrix is not strictly diagonally dominant")
)
