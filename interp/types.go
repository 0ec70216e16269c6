package interp

import "math"

// Default tolerances. Two scales are in play: structural checks on the
// sample set (duplicate detection, equidistance) use DefaultTolerance,
// while the Björck–Pereyra elimination re-checks node differences at the
// tighter DefaultSolveTolerance because it divides by them.
const (
	// DefaultTolerance guards duplicate-node and equidistance checks.
	DefaultTolerance = 1e-9

	// DefaultSolveTolerance guards divisions inside the Vandermonde solve.
	DefaultSolveTolerance = 1e-10
)

// Point is one (x, y) sample. A fixed two-field struct rather than a
// generic pair keeps field access explicit and typed.
type Point struct {
	X float64 // node (abscissa)
	Y float64 // sample value at X
}

// Result is the output of every interpolation builder.
//
// Results is nil when no evaluation points were requested; otherwise it
// holds the polynomial values at the requested x-coordinates in matching
// order. Coefficients are power-basis (index i ↔ xⁱ) and always satisfy
// len(Coefficients) == Degree+1.
type Result struct {
	Results      []float64 // optional evaluations, nil if none requested
	Coefficients []float64 // power-basis coefficients c₀..c_d
	Degree       int       // polynomial degree d
}

// Direction selects which Newton finite-difference formula is applied and
// which difference-table diagonal feeds it.
type Direction int

const (
	// Forward reads differences starting at the anchor (Δᵏf at the anchor)
	// and uses the binomial (s,k) = s(s−1)···(s−k+1)/k!.
	Forward Direction = iota

	// Backward reads differences ending at the anchor and uses the binomial
	// (s⁺,k) = s(s+1)···(s+k−1)/k!.
	Backward
)

// Options configures the shared numeric policy of the builders.
// Zero values are replaced by the documented defaults at resolution time,
// so Options{} behaves exactly like DefaultOptions().
type Options struct {
	// Tolerance gates duplicate-node detection and equidistance checks.
	Tolerance float64
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithTolerance overrides the structural tolerance. The value must be
// finite and positive; nonsensical values are a programmer error and
// panic, mirroring the option constructors across this library.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("interp: WithTolerance: tolerance must be finite and positive")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// gatherOptions resolves user setters on top of the defaults,
// last-writer-wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
