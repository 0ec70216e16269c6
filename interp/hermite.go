package interp

import (
	"math"
	"sort"

	"github.com/katalvlaran/interpol/poly"
)

// hermiteZeroDenominator is the guard for the divided-difference recursion
// on the doubled node sequence. A vanishing denominator cannot occur with
// distinct input nodes, but a division by zero must never crash the build;
// the affected entry contributes zero instead.
const hermiteZeroDenominator = 1e-15

// Hermite interpolates both function values and derivatives: for n input
// points it returns the unique polynomial H of degree 2n−1 with
//
//	H(xᵢ)  = yᵢ   and   H′(xᵢ) = dᵢ   for every i.
//
// derivatives supplies one derivative estimate per point, aligned with the
// points slice (estimating them is the caller's concern, not this
// engine's).
//
// Construction uses divided differences over the doubled node sequence
// z = [x₀, x₀, x₁, x₁, ...]: column 0 of the (2n)×(2n) table Q repeats
// each yᵢ twice; column 1 holds the supplied derivative at even rows
// (encoding the derivative-matching constraint directly) and the ordinary
// divided difference between consecutive distinct nodes at odd rows;
// columns ≥ 2 apply Q[i][j] = (Q[i+1][j−1] − Q[i][j−1])/(z[i+j] − z[i]).
// The first row of Q is the nested-form coefficient sequence, expanded to
// the power basis through poly.NestedToPower - the same primitive the
// direct and Newton routes rely on conceptually.
//
// Errors: ErrInsufficientPoints, ErrDimensionMismatch (derivative count),
// ErrDuplicateNodes.
func Hermite(points []Point, derivatives, evalXs []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if len(points) < 2 {
		return Result{}, ErrInsufficientPoints
	}
	if len(derivatives) != len(points) {
		return Result{}, ErrDimensionMismatch
	}
	if err := validatePointSet(points, o.Tolerance); err != nil {
		return Result{}, err
	}

	// Sort points and derivatives together by x.
	n := len(points)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return points[order[a]].X < points[order[b]].X })

	xs := make([]float64, n)
	ys := make([]float64, n)
	dys := make([]float64, n)
	for i, idx := range order {
		xs[i] = points[idx].X
		ys[i] = points[idx].Y
		dys[i] = derivatives[idx]
	}

	coeffs := hermiteCoefficients(xs, ys, dys)

	return Result{
		Results:      poly.EvalAll(coeffs, evalXs),
		Coefficients: coeffs,
		Degree:       2*n - 1,
	}, nil
}

// hermiteCoefficients builds the repeated-node divided-difference table
// and converts its first row from nested to power basis.
func hermiteCoefficients(xs, ys, dys []float64) []float64 {
	n := len(xs)
	size := 2 * n

	// Doubled node sequence: each x appears twice.
	z := make([]float64, 0, size)
	for _, x := range xs {
		z = append(z, x, x)
	}

	// Q[i][j] holds f[zᵢ, ..., z_{i+j}].
	q := make([][]float64, size)
	for i := range q {
		q[i] = make([]float64, size)
	}

	// Column 0: function values, repeated for both copies of the node.
	for i := 0; i < n; i++ {
		q[2*i][0] = ys[i]
		q[2*i+1][0] = ys[i]
	}

	// Column 1: supplied derivatives at even rows; ordinary first-order
	// divided differences between consecutive distinct nodes at odd rows.
	for i := 0; i < n; i++ {
		q[2*i][1] = dys[i]
		if i < n-1 {
			q[2*i+1][1] = (q[2*i+2][0] - q[2*i+1][0]) / (z[2*i+2] - z[2*i+1])
		}
	}

	// Columns ≥ 2: the standard recursion, guarded against a vanishing
	// denominator.
	for j := 2; j < size; j++ {
		for i := 0; i < size-j; i++ {
			denom := z[i+j] - z[i]
			if math.Abs(denom) < hermiteZeroDenominator {
				q[i][j] = 0.0

				continue
			}
			q[i][j] = (q[i+1][j-1] - q[i][j-1]) / denom
		}
	}

	// The top row is the nested-form coefficient sequence.
	nested := make([]float64, size)
	for j := 0; j < size; j++ {
		nested[j] = q[0][j]
	}

	return poly.NestedToPower(nested, z)
}
