package interp_test

import (
	"testing"

	"github.com/katalvlaran/interpol/interp"
	"github.com/katalvlaran/interpol/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLagrange_KnownCoefficients checks a hand-worked example: the points
// (1,2), (2,3), (3,5) lie on P(x) = 2 − 0.5·x + 0.5·x².
func TestLagrange_KnownCoefficients(t *testing.T) {
	points := []interp.Point{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 5}}

	res, err := interp.Lagrange(points, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Degree)
	require.Len(t, res.Coefficients, 3)
	assert.InDelta(t, 2.0, res.Coefficients[0], 1e-12)
	assert.InDelta(t, -0.5, res.Coefficients[1], 1e-12)
	assert.InDelta(t, 0.5, res.Coefficients[2], 1e-12)
}

// TestLagrange_AgreesWithDirect confirms both routes reach the same unique
// polynomial on a deliberately uneven node set.
func TestLagrange_AgreesWithDirect(t *testing.T) {
	points := []interp.Point{
		{X: -1.5, Y: 2.25},
		{X: 0.2, Y: -0.7},
		{X: 1.0, Y: 3.14},
		{X: 4.75, Y: -8.0},
	}
	evalXs := []float64{-1.0, 0.0, 2.2, 3.9}

	lag, err := interp.Lagrange(points, evalXs)
	require.NoError(t, err)
	dir, err := interp.Direct(points, evalXs)
	require.NoError(t, err)

	require.Len(t, lag.Coefficients, len(dir.Coefficients))
	for i := range lag.Coefficients {
		assert.InDelta(t, dir.Coefficients[i], lag.Coefficients[i], 1e-6,
			"coefficient %d must agree across routes", i)
	}
	for i := range evalXs {
		assert.InDelta(t, dir.Results[i], lag.Results[i], 1e-6,
			"evaluation %d must agree across routes", i)
	}
}

// TestLagrange_ReproducesNodes checks the defining property Lₖ(xₖ) = 1:
// evaluating at the input nodes returns the input values.
func TestLagrange_ReproducesNodes(t *testing.T) {
	points := []interp.Point{{X: 0.5, Y: 1.1}, {X: 2, Y: -3}, {X: 3.5, Y: 0.25}, {X: 5, Y: 9}}

	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}

	res, err := interp.Lagrange(points, xs)
	require.NoError(t, err)
	for i, p := range points {
		assert.InDelta(t, p.Y, res.Results[i], 1e-9, "node %d must be reproduced", i)
	}
}

// TestLagrange_Errors covers the shared point-set contract.
func TestLagrange_Errors(t *testing.T) {
	_, err := interp.Lagrange([]interp.Point{{X: 1, Y: 1}}, nil)
	assert.ErrorIs(t, err, interp.ErrInsufficientPoints)

	dup := []interp.Point{{X: 2, Y: 1}, {X: 2, Y: 4}}
	_, err = interp.Lagrange(dup, nil)
	assert.ErrorIs(t, err, interp.ErrDuplicateNodes)
}

// TestLagrange_TwoPointsIsLine verifies the degenerate linear case.
func TestLagrange_TwoPointsIsLine(t *testing.T) {
	points := []interp.Point{{X: 0, Y: 1}, {X: 2, Y: 5}}

	res, err := interp.Lagrange(points, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Degree)
	assert.InDelta(t, 3.0, res.Results[0], 1e-12, "midpoint of the line")
	assert.InDelta(t, 1.0, poly.Eval(res.Coefficients, 0), 1e-12)
	assert.InDelta(t, 2.0, res.Coefficients[1], 1e-12, "slope")
}
