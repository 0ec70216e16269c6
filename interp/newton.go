package interp

import (
	"math"

	"github.com/katalvlaran/interpol/poly"
)

// ValidateEquidistant checks that the (sorted) nodes share one common step
// and returns it. Every consecutive step is compared against the first;
// any deviation beyond tolerance is a hard failure, because the Newton
// forward/backward formulas are simply invalid on uneven spacing.
//
// Pass a non-positive tolerance to use DefaultTolerance.
//
// Errors: ErrInsufficientPoints for fewer than 2 nodes; ErrNonEquidistant
// on uneven spacing.
func ValidateEquidistant(xs []float64, tolerance float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrInsufficientPoints
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	h := xs[1] - xs[0] // reference step
	for i := 1; i < len(xs)-1; i++ {
		if math.Abs((xs[i+1]-xs[i])-h) > tolerance {
			return 0, ErrNonEquidistant
		}
	}

	return h, nil
}

// DifferenceTable builds the full forward-difference table of ys.
// Level 0 holds the raw values; level k holds the k-th forward differences
// Δᵏf_j = Δᵏ⁻¹f_{j+1} − Δᵏ⁻¹f_j, shrinking by one entry per level:
//
//	table[0] = [f₀, f₁, f₂, f₃]
//	table[1] = [Δf₀, Δf₁, Δf₂]
//	table[2] = [Δ²f₀, Δ²f₁]
//	table[3] = [Δ³f₀]
//
// Built once per Newton call; forward and backward interpolation read it
// from different diagonals.
//
// Complexity: O(n²) time and space.
func DifferenceTable(ys []float64) [][]float64 {
	n := len(ys)
	table := make([][]float64, 0, n)

	level0 := make([]float64, n)
	copy(level0, ys)
	table = append(table, level0)

	for level := 1; level < n; level++ {
		prev := table[level-1]
		curr := make([]float64, len(prev)-1)
		for j := 0; j < len(curr); j++ {
			curr[j] = prev[j+1] - prev[j]
		}
		table = append(table, curr)
	}

	return table
}

// SelectAnchor picks the reference index x₀ for a truncated Newton series
// near xEval. Forward interpolation anchors on the left endpoint of the
// containing interval (clamped to [0, n−2]); Backward mirrors it with the
// right endpoint (clamped to [1, n−1]). xs must be sorted ascending.
//
// The full-polynomial builders below anchor at 0 and n−1 and therefore use
// every table entry; SelectAnchor serves callers that evaluate a truncated
// series close to the point of interest.
func SelectAnchor(xs []float64, xEval float64, dir Direction) int {
	n := len(xs)

	switch {
	case xEval <= xs[0]:
		// At or before the first node.
		if dir == Forward {
			return 0
		}

		return min(1, n-1)
	case xEval >= xs[n-1]:
		// At or after the last node.
		if dir == Forward {
			return max(0, n-2)
		}

		return n - 1
	}

	// Inside the range: locate the containing interval [xᵢ, xᵢ₊₁].
	for i := 0; i < n-1; i++ {
		if xs[i] <= xEval && xEval <= xs[i+1] {
			if dir == Forward {
				return i
			}

			return i + 1
		}
	}

	// Unreachable with sorted input; keep the clamped fallback anyway.
	if dir == Forward {
		return 0
	}

	return n - 1
}

// ForwardBinomial computes the generalized binomial coefficient
// (s,k) = s(s−1)(s−2)···(s−k+1)/k! used by the forward formula,
// with s = (x − x₀)/h. (s,0) is 1.
func ForwardBinomial(s float64, k int) float64 {
	if k == 0 {
		return 1.0
	}
	numerator := 1.0
	for i := 0; i < k; i++ {
		numerator *= s - float64(i)
	}

	return numerator / factorial(k)
}

// BackwardBinomial computes the backward counterpart
// (s⁺,k) = s(s+1)(s+2)···(s+k−1)/k!, increments positive instead of
// negative. (s⁺,0) is 1.
func BackwardBinomial(s float64, k int) float64 {
	if k == 0 {
		return 1.0
	}
	numerator := 1.0
	for i := 0; i < k; i++ {
		numerator *= s + float64(i)
	}

	return numerator / factorial(k)
}

// factorial returns k! as a float64; node counts keep k far below the
// float64 integer-precision limit.
func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}

	return f
}

// newtonCoefficients builds the interpolating polynomial anchored at
// xs[anchor] and returns its power-basis coefficients.
//
// Stage 1 assembles the polynomial in the normalized variable
// s = (x − x₀)/h: each order k contributes the binomial term - the running
// product of (s − i) factors for Forward, (s + i) for Backward - divided
// by k! and scaled by the matching difference-table entry (table[k][anchor]
// forward, table[k][anchor−k] backward). Stage 2 re-expresses the result
// in x by expanding each power of (x − x₀) and scaling by 1/hⁱ.
func newtonCoefficients(xs, ys []float64, anchor int, h float64, dir Direction) []float64 {
	n := len(ys)
	table := DifferenceTable(ys)
	x0 := xs[anchor]

	// Stage 1: coefficients of P(s).
	sCoeffs := make([]float64, n)

	// Forward walks k upward from the anchor; backward is capped by how
	// many diagonal entries end at the anchor.
	maxOrder := n - anchor
	if dir == Backward {
		maxOrder = min(anchor+1, len(table))
	}

	for k := 0; k < maxOrder; k++ {
		// Guard the table depth; reachable when a caller anchors mid-table
		// via SelectAnchor and the diagonal runs out.
		diffIndex := anchor
		if dir == Backward {
			diffIndex = anchor - k
		}
		if k >= len(table) || diffIndex < 0 || diffIndex >= len(table[k]) {
			break
		}
		diff := table[k][diffIndex]

		// Binomial numerator as a polynomial in s: Π (s ∓ i).
		binomial := []float64{1.0}
		for i := 0; i < k; i++ {
			root := float64(i) // forward: (s − i)
			if dir == Backward {
				root = -float64(i) // backward: (s + i)
			}
			binomial = poly.MulLinear(binomial, root)
		}

		// Fold (binomial/k!)·Δᵏf into the running P(s).
		sCoeffs = poly.AddScaled(sCoeffs, binomial, diff/factorial(k))
	}

	// Stage 2: substitute s = (x − x₀)/h, i.e. expand cᵢ·(x − x₀)ⁱ/hⁱ.
	coeffs := make([]float64, n)
	for i, ci := range sCoeffs {
		if ci == 0 {
			continue
		}
		term := []float64{1.0}
		for p := 0; p < i; p++ {
			term = poly.MulLinear(term, x0)
		}
		coeffs = poly.AddScaled(coeffs, term, ci/math.Pow(h, float64(i)))
	}

	return coeffs
}

// newton is the shared facade body for both directions: sort a copy of
// the points, validate the contract, build the coefficients from the
// direction's canonical anchor, and evaluate on request.
func newton(points []Point, evalXs []float64, dir Direction, o Options) (Result, error) {
	if len(points) < 2 {
		return Result{}, ErrInsufficientPoints
	}

	sorted := sortedByX(points)
	xs, ys := splitXY(sorted)

	if err := validateDistinct(xs, o.Tolerance); err != nil {
		return Result{}, err
	}
	h, err := ValidateEquidistant(xs, o.Tolerance)
	if err != nil {
		return Result{}, err
	}

	// Canonical anchors give the full-depth series: index 0 reads the top
	// row of the table, index n−1 reads the bottom diagonal. Both yield the
	// same unique degree-(n−1) polynomial, reached through different
	// formulas.
	anchor := 0
	if dir == Backward {
		anchor = len(xs) - 1
	}
	coeffs := newtonCoefficients(xs, ys, anchor, h, dir)

	return Result{
		Results:      poly.EvalAll(coeffs, evalXs),
		Coefficients: coeffs,
		Degree:       len(points) - 1,
	}, nil
}

// NewtonForward interpolates equidistant samples with Newton's forward
// difference formula
//
//	P(x) = f₀ + (s,1)Δf₀ + (s,2)Δ²f₀ + ... ,  s = (x − x₀)/h,
//
// anchored at the first node. Input order does not matter; points are
// sorted by x before the difference table is built.
//
// Errors: ErrInsufficientPoints, ErrDuplicateNodes, ErrNonEquidistant.
func NewtonForward(points []Point, evalXs []float64, opts ...Option) (Result, error) {
	return newton(points, evalXs, Forward, gatherOptions(opts...))
}

// NewtonBackward interpolates equidistant samples with Newton's backward
// difference formula, anchored at the last node and reading the
// difference table's ending diagonal with the (s⁺,k) binomials.
//
// Errors: ErrInsufficientPoints, ErrDuplicateNodes, ErrNonEquidistant.
func NewtonBackward(points []Point, evalXs []float64, opts ...Option) (Result, error) {
	return newton(points, evalXs, Backward, gatherOptions(opts...))
}
