// Package poly provides power-basis polynomial primitives shared by every
// interpolation builder: Horner evaluation, coefficient convolution,
// linear-factor multiplication, and the nested (Newton) form to power-basis
// conversion.
//
// A polynomial is an ordered []float64 where index i holds the coefficient
// of xⁱ, so the value at x is Σ cᵢ·xⁱ and len(coeffs) == degree + 1.
// The canonical evaluator is Horner's method (right-to-left accumulation);
// it is used everywhere coefficients are turned back into values.
//
// All functions are pure: inputs are never mutated and results are freshly
// allocated, so callers may share coefficient slices freely.
//
// Performance:
//
//   - Eval:          O(d) time, O(1) space
//   - Mul:           O(d₁·d₂) time (naive convolution, fine for the small
//     degrees interpolation produces)
//   - MulLinear:     O(d) time
//   - NestedToPower: O(m²) time for m nested coefficients
package poly
