package spline

import "math"

// estimateGradients imputes a first-derivative value at every sample
// point using Judd's finite-difference formula. Interior points on a
// monotone run get a chord-length-weighted average of the adjacent
// secant slopes; interior local extrema get a zero gradient so the
// spline cannot overshoot them. Boundary gradients extrapolate the
// nearest secant against the neighboring estimate.
//
// Callers guarantee len(x) == len(y) >= 3; n <= 2 never reaches here.
// Pure function, O(n) time, O(n) memory.
func estimateGradients(x, y []float64) []float64 {
	n := len(x)
	length := make([]float64, n-1) // chord lengths
	slope := make([]float64, n-1)  // secant slopes
	for i := 0; i+1 < n; i++ {
		length[i] = math.Hypot(x[i+1]-x[i], y[i+1]-y[i])
		slope[i] = (y[i+1] - y[i]) / (x[i+1] - x[i])
	}

	grad := make([]float64, n)
	for i := 1; i < n-1; i++ {
		if slope[i-1]*slope[i] > 0 {
			// Monotone run: length-weighted average keeps the sign.
			grad[i] = (length[i-1]*slope[i-1] + length[i]*slope[i]) /
				(length[i-1] + length[i])
		}
		// Sign change means a local extremum; grad[i] stays 0.
	}
	grad[0] = (3*slope[0] - grad[1]) / 2
	grad[n-1] = (3*slope[n-2] - grad[n-2]) / 2

	return grad
}
