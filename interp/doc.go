// Package interp computes exact interpolating polynomials through a finite
// set of (x, y) samples, via four distinct algorithmic routes:
//
//   - Direct        — solve the Vandermonde system with the Björck–Pereyra
//     divided-difference elimination, O(n²) instead of O(n³)
//   - Lagrange      — build and combine the Lagrange basis polynomials
//   - NewtonForward / NewtonBackward — finite-difference formulas for
//     equidistant nodes, sharing one difference table
//   - Hermite       — divided differences with repeated nodes, matching
//     caller-supplied derivative values as well as function values
//
// Every builder returns power-basis coefficients (see package poly) and,
// when evaluation points are supplied, the polynomial values at those
// points computed with Horner's method. Degree is n−1 everywhere except
// Hermite, which reaches 2n−1 for n input points.
//
// Contracts (enforced eagerly, surfaced as sentinel errors):
//
//   - at least 2 sample points               → ErrInsufficientPoints
//   - pairwise-distinct x within tolerance   → ErrDuplicateNodes
//   - equidistant spacing for Newton routes  → ErrNonEquidistant
//   - matching slice lengths where relevant  → ErrDimensionMismatch
//
// All computations are pure and stateless: inputs are copied before any
// in-place elimination, so concurrent calls need no coordination.
//
// Derivative estimation for Hermite input is deliberately out of scope;
// the engine consumes derivative values, it does not estimate them.
package interp
