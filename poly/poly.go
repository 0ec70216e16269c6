package poly

// Eval evaluates the polynomial c₀ + c₁x + ... + c_dx^d at x using
// Horner's method (right-to-left accumulation).
// An empty coefficient slice evaluates to 0.
//
// Complexity: O(len(coeffs)) time, O(1) space.
func Eval(coeffs []float64, x float64) float64 {
	result := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result*x + coeffs[i]
	}

	return result
}

// EvalAll evaluates the polynomial at every x in xs and returns the values
// in matching order. A nil or empty xs yields nil, which lets callers pass
// through an optional evaluation request unchanged.
func EvalAll(coeffs []float64, xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	results := make([]float64, len(xs))
	for i, x := range xs {
		results[i] = Eval(coeffs, x)
	}

	return results
}

// Mul multiplies two polynomials by coefficient-vector convolution and
// returns the freshly allocated product. If either operand is empty the
// product is nil (the zero polynomial has no coefficients).
//
// Complexity: O(len(p)·len(q)) time.
func Mul(p, q []float64) []float64 {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	result := make([]float64, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue // skip zero rows of the convolution
		}
		for j, qc := range q {
			result[i+j] += pc * qc
		}
	}

	return result
}

// MulLinear multiplies p by the monic linear factor (x - root) and returns
// the product, one degree higher than p. It is the building block for
// Lagrange numerators, generalized binomial terms, and nested-form
// expansion, kept separate from Mul so the hot conversion loops avoid the
// general convolution.
//
// Complexity: O(len(p)) time.
func MulLinear(p []float64, root float64) []float64 {
	if len(p) == 0 {
		return nil
	}
	result := make([]float64, len(p)+1)
	for j, pc := range p {
		result[j] -= root * pc // -root · p(x) keeps the same degrees
		result[j+1] += pc      // x · p(x) shifts every degree up by one
	}

	return result
}

// AddScaled accumulates scale·src into dst term by term and returns dst,
// growing it when src is longer. Passing dst == nil starts a fresh
// accumulator. The returned slice must be used in place of dst (append
// semantics).
func AddScaled(dst, src []float64, scale float64) []float64 {
	for len(dst) < len(src) {
		dst = append(dst, 0)
	}
	for j, sc := range src {
		dst[j] += scale * sc
	}

	return dst
}

// NestedToPower converts a nested (Newton) form polynomial
//
//	c₀ + c₁(x−z₀) + c₂(x−z₀)(x−z₁) + ... + c_{m−1}(x−z₀)···(x−z_{m−2})
//
// into power-basis coefficients. It expands from the highest-order term
// down: at each step the running polynomial is multiplied by (x − zᵢ) and
// the next nested coefficient is folded into the constant term. Direct,
// Newton, and Hermite builders all funnel through this single primitive so
// their numerical behavior is identical.
//
// nodes must supply at least len(nested)−1 entries (z₀..z_{m−2}); extra
// entries are ignored. An empty nested slice yields nil.
//
// Complexity: O(m²) time, O(m) space.
func NestedToPower(nested, nodes []float64) []float64 {
	m := len(nested)
	if m == 0 {
		return nil
	}

	// Start from the highest-degree nested coefficient.
	result := []float64{nested[m-1]}

	// Work backwards: result ← result·(x − zᵢ) + cᵢ.
	for i := m - 2; i >= 0; i-- {
		result = MulLinear(result, nodes[i])
		result[0] += nested[i]
	}

	return result
}
