package interp

import (
	"math"

	"github.com/katalvlaran/interpol/poly"
)

// BjorckPereyra solves the Vandermonde system V·c = f, where V[i][j] = xᵢʲ,
// and returns the power-basis coefficients of the polynomial satisfying
// p(xᵢ) = fᵢ for all i.
//
// The algorithm exploits the divided-difference structure of V to run in
// O(n²) time instead of the O(n³) of general elimination, and sidesteps
// the notorious conditioning of an explicitly formed Vandermonde matrix.
// It works fully in place on private copies of the inputs:
//
//  1. forward elimination - for increasing gap k, sweep i from n−1 down to
//     k+1 replacing cᵢ with (cᵢ − cᵢ₋₁)/(xᵢ − x_{i−k−1}), which builds the
//     divided differences without an explicit table;
//  2. backward accumulation - for k from n−2 down to 0, subtract xₖ·c_{i+1}
//     from cᵢ (a Horner-style expansion of the Newton nested form into the
//     power basis).
//
// tolerance gates duplicate-node detection; pass 0 (or any non-positive
// value) to use DefaultSolveTolerance. Nodes are checked exhaustively up
// front and re-checked per elimination step, since every step divides by
// a node difference.
//
// Errors: ErrDimensionMismatch when len(x) != len(f); ErrInsufficientPoints
// when no points are given; ErrDuplicateNodes on nodes closer than
// tolerance. n == 1 is a valid trivial case: the "polynomial" is the
// single value.
func BjorckPereyra(x, f []float64, tolerance float64) ([]float64, error) {
	n := len(x)
	if len(f) != n {
		return nil, ErrDimensionMismatch
	}
	if n < 1 {
		return nil, ErrInsufficientPoints
	}
	if tolerance <= 0 {
		tolerance = DefaultSolveTolerance
	}

	// Thorough duplicate scan before any arithmetic.
	if err := validateDistinct(x, tolerance); err != nil {
		return nil, err
	}

	// Copy inputs; the elimination below is destructive.
	nodes := make([]float64, n)
	copy(nodes, x)
	c := make([]float64, n)
	copy(c, f)

	if n == 1 {
		return c, nil
	}

	// Phase 1: forward elimination (divided differences).
	// Descending i keeps c[i-1] at its previous-order value when c[i] is
	// updated.
	for k := 0; k < n-1; k++ {
		for i := n - 1; i > k; i-- {
			diff := nodes[i] - nodes[i-k-1]
			if math.Abs(diff) < tolerance {
				return nil, ErrDuplicateNodes
			}
			c[i] = (c[i] - c[i-1]) / diff
		}
	}

	// Phase 2: backward accumulation (Newton nested form → power basis).
	for k := n - 2; k >= 0; k-- {
		for i := k; i < n-1; i++ {
			c[i] -= nodes[k] * c[i+1]
		}
	}

	return c, nil
}

// Direct performs direct polynomial interpolation through the Vandermonde
// system. Given n points it returns the unique degree-(n−1) polynomial
// passing through all of them, solved with BjorckPereyra, plus optional
// evaluations at evalXs.
//
// Points are consumed in caller order (the solve is order-independent).
//
// Errors: ErrInsufficientPoints for fewer than 2 points; ErrDuplicateNodes
// on x-values closer than the structural tolerance.
func Direct(points []Point, evalXs []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if err := validatePointSet(points, o.Tolerance); err != nil {
		return Result{}, err
	}

	xs, ys := splitXY(points)
	coeffs, err := BjorckPereyra(xs, ys, DefaultSolveTolerance)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Results:      poly.EvalAll(coeffs, evalXs),
		Coefficients: coeffs,
		Degree:       len(points) - 1,
	}, nil
}
