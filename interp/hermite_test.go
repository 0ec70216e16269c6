package interp_test

import (
	"testing"

	"github.com/katalvlaran/interpol/interp"
	"github.com/katalvlaran/interpol/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// derivativeEval evaluates p'(x) from power-basis coefficients.
func derivativeEval(coeffs []float64, x float64) float64 {
	v := 0.0
	for i := len(coeffs) - 1; i >= 1; i-- {
		v = v*x + float64(i)*coeffs[i]
	}

	return v
}

// TestHermite_DegreeAndShape checks the structural contract: n points give
// degree 2n−1 and the requested evaluations.
func TestHermite_DegreeAndShape(t *testing.T) {
	points := []interp.Point{{X: 1, Y: 2}, {X: 2, Y: 5}, {X: 3, Y: 4}}
	derivatives := []float64{1.0, 0.5, -2.0}

	res, err := interp.Hermite(points, derivatives, []float64{1.5})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Degree, "3 points with derivatives give degree 5")
	assert.Len(t, res.Coefficients, 6)
	assert.Len(t, res.Results, 1)
}

// TestHermite_ReproducesValuesAndDerivatives is the defining property:
// H(xᵢ) = yᵢ and H′(xᵢ) = dᵢ at every node.
func TestHermite_ReproducesValuesAndDerivatives(t *testing.T) {
	points := []interp.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2.5, Y: -2}}
	derivatives := []float64{0.0, 2.0, -1.5}

	res, err := interp.Hermite(points, derivatives, nil)
	require.NoError(t, err)

	for i, p := range points {
		assert.InDelta(t, p.Y, poly.Eval(res.Coefficients, p.X), 1e-9,
			"value at node %d", i)
		assert.InDelta(t, derivatives[i], derivativeEval(res.Coefficients, p.X), 1e-8,
			"derivative at node %d", i)
	}
}

// TestHermite_ExactOnCubic samples P(x) = x³ with its true derivatives;
// the degree-5 Hermite polynomial must collapse to the cubic itself.
func TestHermite_ExactOnCubic(t *testing.T) {
	points := []interp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 8}}
	derivatives := []float64{0, 3, 12} // P'(x) = 3x²

	res, err := interp.Hermite(points, derivatives, []float64{1.5})
	require.NoError(t, err)

	want := []float64{0, 0, 0, 1, 0, 0}
	require.Len(t, res.Coefficients, len(want))
	for i := range want {
		assert.InDelta(t, want[i], res.Coefficients[i], 1e-9, "coefficient %d", i)
	}
	assert.InDelta(t, 3.375, res.Results[0], 1e-9, "1.5³")
}

// TestHermite_UnsortedInput verifies points and derivatives are reordered
// together.
func TestHermite_UnsortedInput(t *testing.T) {
	points := []interp.Point{{X: 2, Y: 8}, {X: 0, Y: 0}, {X: 1, Y: 1}}
	derivatives := []float64{12, 0, 3} // aligned with the shuffled points

	res, err := interp.Hermite(points, derivatives, []float64{1.5})
	require.NoError(t, err)
	assert.InDelta(t, 3.375, res.Results[0], 1e-9, "joint sort must keep pairs aligned")
}

// TestHermite_Errors covers the contract violations.
func TestHermite_Errors(t *testing.T) {
	points := []interp.Point{{X: 0, Y: 1}, {X: 1, Y: 2}}

	// Derivative count must match the point count.
	_, err := interp.Hermite(points, []float64{1.0}, nil)
	assert.ErrorIs(t, err, interp.ErrDimensionMismatch)

	// Fewer than 2 points.
	_, err = interp.Hermite(points[:1], []float64{1.0}, nil)
	assert.ErrorIs(t, err, interp.ErrInsufficientPoints)

	// Duplicate nodes.
	dup := []interp.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	_, err = interp.Hermite(dup, []float64{0, 0}, nil)
	assert.ErrorIs(t, err, interp.ErrDuplicateNodes)
}
