package interp

import "github.com/katalvlaran/interpol/poly"

// Lagrange interpolates via explicit Lagrange basis polynomials.
//
// For each index k the numerator Lₖ(x) = Π_{i≠k}(x − xᵢ) is built by
// repeated linear-factor multiplication, normalized by the scalar
// denominator Π_{i≠k}(xₖ − xᵢ) so that Lₖ(xₖ) = 1, scaled by yₖ, and
// accumulated into the running result. The outcome is the same unique
// degree-(n−1) polynomial Direct produces, reached through a different
// route.
//
// Cost is O(n³) from the naive convolutions, which is fine for
// interpolation node counts (small n, not datasets).
//
// Errors: ErrInsufficientPoints, ErrDuplicateNodes (the denominators
// vanish on duplicate nodes, so the contract is checked up front).
func Lagrange(points []Point, evalXs []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if err := validatePointSet(points, o.Tolerance); err != nil {
		return Result{}, err
	}

	n := len(points)
	xs, ys := splitXY(points)

	// Accumulate Σₖ yₖ·Lₖ(x) in the power basis.
	coeffs := make([]float64, n)
	for k := 0; k < n; k++ {
		// Numerator: Π_{i≠k} (x − xᵢ), built one linear factor at a time.
		basis := []float64{1.0}
		for i := 0; i < n; i++ {
			if i != k {
				basis = poly.MulLinear(basis, xs[i])
			}
		}

		// Scalar denominator: Π_{i≠k} (xₖ − xᵢ).
		denom := 1.0
		for i := 0; i < n; i++ {
			if i != k {
				denom *= xs[k] - xs[i]
			}
		}

		// Fold yₖ·Lₖ into the result.
		for j, bc := range basis {
			coeffs[j] += bc / denom * ys[k]
		}
	}

	return Result{
		Results:      poly.EvalAll(coeffs, evalXs),
		Coefficients: coeffs,
		Degree:       n - 1,
	}, nil
}
