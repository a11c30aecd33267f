package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEstimateGradients_StraightLine verifies that collinear samples
// yield the common slope at every point, boundaries included.
func TestEstimateGradients_StraightLine(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}

	g := estimateGradients(x, y)

	assert.Equal(t, []float64{1, 1, 1}, g, "a straight line has gradient 1 everywhere")
}

// TestEstimateGradients_LocalExtremum verifies that an interior point
// where the secant slopes change sign gets a zero gradient, and that
// the boundary formula s1 = (3*d1 - s2)/2 follows from it.
func TestEstimateGradients_LocalExtremum(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 0} // peak at x=1

	g := estimateGradients(x, y)

	require.Len(t, g, 3)
	assert.Zero(t, g[1], "interior extremum must get zero gradient")
	assert.Equal(t, 1.5, g[0], "left boundary: (3*1 - 0)/2")
	assert.Equal(t, -1.5, g[2], "right boundary: (3*(-1) - 0)/2")
}

// TestEstimateGradients_WeightedAverage checks the chord-length
// weighted average on a monotone run against hand-computed values for
// the quadratic samples y = x².
func TestEstimateGradients_WeightedAverage(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 4, 9, 16}

	g := estimateGradients(x, y)

	require.Len(t, g, 4)
	// d = [3, 5, 7], L = [√10, √26, √50].
	assert.InDelta(t, 4.23443, g[1], 1e-4, "(L1*3 + L2*5)/(L1+L2)")
	assert.InDelta(t, 6.16204, g[2], 1e-4, "(L2*5 + L3*7)/(L2+L3)")
	assert.InDelta(t, (3*3-g[1])/2, g[0], 1e-12)
	assert.InDelta(t, (3*7-g[2])/2, g[3], 1e-12)
}

// TestEstimateGradients_MonotoneSignsPreserved verifies shape intent:
// strictly increasing data never produces a negative interior gradient.
func TestEstimateGradients_MonotoneSignsPreserved(t *testing.T) {
	x := []float64{0, 0.5, 1.5, 2, 4, 7}
	y := []float64{0, 1, 1.5, 3, 3.5, 9}

	g := estimateGradients(x, y)

	for i, v := range g[1 : len(g)-1] {
		assert.Positive(t, v, "interior gradient %d must stay positive", i+1)
	}
}
