package interp

import "errors"

// Sentinel errors returned by the interpolation builders. All precondition
// violations are detected eagerly and surfaced immediately; there is no
// internal retry or silent recovery. Callers match via errors.Is.
var (
	// ErrInsufficientPoints indicates fewer than 2 sample points were supplied.
	ErrInsufficientPoints = errors.New("interp: at least 2 points required")

	// ErrDuplicateNodes indicates two x-coordinates closer than the active
	// tolerance; the interpolation problem is singular in that case.
	ErrDuplicateNodes = errors.New("interp: duplicate x-coordinates detected")

	// ErrNonEquidistant indicates that a Newton forward/backward route was
	// asked to interpolate nodes without a common step size. The finite
	// difference formulas are invalid there, so this is a hard failure.
	ErrNonEquidistant = errors.New("interp: points must be equidistant for Newton interpolation")

	// ErrDimensionMismatch indicates that paired slices (nodes vs. values,
	// points vs. derivatives) differ in length.
	ErrDimensionMismatch = errors.New("interp: paired input lengths differ")
)
