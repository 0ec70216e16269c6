package linsolve

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultPivotTolerance gates singularity detection in LU and Gaussian
	// elimination: any pivot below it aborts the solve.
	DefaultPivotTolerance = 1e-10

	// DefaultOmega is the SOR relaxation factor; 1.0 is plain Gauss-Seidel.
	DefaultOmega = 1.0

	// DefaultTolerance is the Gauss-Seidel convergence threshold on the
	// maximum absolute per-component change between iterations.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the Gauss-Seidel loop.
	DefaultMaxIterations = 800
)

// PivotStrategy selects how Gaussian elimination scores candidate pivots.
// A closed enumeration dispatched at the scan site, not a string compared
// inside the elimination loop.
type PivotStrategy int

const (
	// PivotScaled compares |Aᵢₖ|/sᵢ where sᵢ is row i's maximum absolute
	// entry (computed once up front). Scaling avoids promoting rows whose
	// large leading entry merely reflects a large row.
	PivotScaled PivotStrategy = iota

	// PivotAbsolute compares |Aᵢₖ| directly.
	PivotAbsolute
)

// InitialGuess selects how Gauss-Seidel seeds its solution vector before
// the first sweep.
type InitialGuess int

const (
	// GuessDiagonal seeds x⁰ᵢ = bᵢ/Aᵢᵢ, the single-variable solution of each
	// row in isolation. A good cheap start for diagonally dominant systems.
	GuessDiagonal InitialGuess = iota

	// GuessZero seeds x⁰ = 0.
	GuessZero
)

// Options configures SolveGaussSeidel.
//
//	Omega         - SOR relaxation factor, must be strictly inside (0, 2):
//	                ω = 1 is standard Gauss-Seidel, ω < 1 damps
//	                oscillations, ω > 1 accelerates convergence.
//	Tolerance     - stop once the max absolute change across all unknowns
//	                in one sweep falls below this.
//	MaxIterations - hard cap on sweeps; reaching it is NOT an error (see
//	                SolveGaussSeidel).
//	Guess         - initial-vector strategy.
type Options struct {
	Omega         float64
	Tolerance     float64
	MaxIterations int
	Guess         InitialGuess
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use it as a starting point and override fields as needed.
func DefaultOptions() Options {
	return Options{
		Omega:         DefaultOmega,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Guess:         GuessDiagonal,
	}
}
