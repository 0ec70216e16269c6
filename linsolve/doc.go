// Package linsolve solves small dense linear systems A·x = b with three
// numerical methods sharing one safety policy (tolerance-gated pivots,
// copy-before-mutate):
//
//   - SolveLU          — Doolittle LU factorization (unit-diagonal L) with
//     forward/backward triangular solves; returns x together with L and U
//   - SolveGauss       — Gaussian elimination with partial pivoting, pivot
//     chosen by scaled ratio |Aᵢₖ|/sᵢ or plain absolute value
//   - SolveGaussSeidel — Gauss–Seidel iteration with successive
//     over-relaxation (SOR); requires strict diagonal dominance and a
//     relaxation factor strictly inside (0, 2)
//
// Matrices are [][]float64 (row major), vectors []float64. Every solver
// copies its inputs before any in-place elimination, so the caller's data
// is never observably altered. Pivots below tolerance fail fast with
// ErrSingular; there is no silent recovery.
//
// Gauss–Seidel exhausting MaxIterations is NOT an error: the
// best current estimate is returned with an iteration count equal to
// MaxIterations, and convergence judgment is left to the caller.
//
// Intended for the "few hundred unknowns" regime; sparse and very large
// systems are out of scope.
package linsolve
