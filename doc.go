// Package interpol is a compact numerical toolbox for exact polynomial
// interpolation and small dense linear systems.
//
// 🚀 What is interpol?
//
//	A pure-Go library that brings together four classic interpolation
//	routes and three dense-system solvers:
//		• Direct (Vandermonde) interpolation via Björck–Pereyra, O(n²)
//		• Lagrange basis construction and combination
//		• Newton forward/backward finite differences (equidistant nodes)
//		• Hermite divided differences with derivative matching
//		• Doolittle LU decomposition with triangular solves
//		• Gaussian elimination with scaled or absolute partial pivoting
//		• Gauss–Seidel iteration with successive over-relaxation (SOR)
//
// ✨ Why choose interpol?
//
//   - Exact results - every builder returns power-basis coefficients that
//     reproduce the input samples to floating precision
//   - Predictable failures - tolerance-gated singularity and precondition
//     checks surface sentinel errors before any work is wasted
//   - Pure functions - inputs are copied before in-place elimination, no
//     shared state, safe for concurrent callers
//   - Pure Go - no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	poly/     — power-basis coefficient primitives (Horner, convolution,
//	            nested→power conversion)
//	interp/   — the five interpolation builders and their shared contracts
//	linsolve/ — dense linear-system solvers (LU, pivoted Gauss, SOR)
//
// Quick taste:
//
//	res, err := interp.Direct([]interp.Point{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 5}}, []float64{1.5})
//	// res.Coefficients ≈ [1, 0, 1], res.Results ≈ [3.25], res.Degree == 2
//
// Dive into the examples/ directory and per-package example tests for
// full walkthroughs.
//
//	go get github.com/katalvlaran/interpol
package interpol
