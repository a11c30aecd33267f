// Package spline: functional options for New.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the algorithms themselves never panic.
//   - Anything depending on the sample slices (length agreement) is
//     checked inside New and reported as a sentinel error instead.
package spline

import "math"

// config collects construction-time choices for New.
type config struct {
	gradients []float64
	scheme    Extrapolation
	leftGrad  *float64
	rightGrad *float64
}

// Option customizes spline construction by mutating a config instance
// before the build begins. Applying N options costs O(N) time.
type Option func(*config)

// WithGradients supplies per-sample first-derivative values, skipping
// the built-in imputation. Length must match x and y (checked in New).
// Panics on an empty slice; omit the option to request imputation.
func WithGradients(g []float64) Option {
	if len(g) == 0 {
		panic("spline: WithGradients(empty)")
	}
	return func(c *config) {
		c.gradients = g
	}
}

// WithExtrapolation selects the behavior outside the sampled x-range.
// Panics on an unknown scheme.
func WithExtrapolation(e Extrapolation) Option {
	if e < Curve || e > Constant {
		panic("spline: WithExtrapolation(unknown scheme)")
	}
	return func(c *config) {
		c.scheme = e
	}
}

// WithLeftGradient pins the gradient at the first sample, overriding
// both imputed and supplied values there. Panics on NaN.
func WithLeftGradient(g float64) Option {
	if math.IsNaN(g) {
		panic("spline: WithLeftGradient(NaN)")
	}
	return func(c *config) {
		c.leftGrad = &g
	}
}

// WithRightGradient pins the gradient at the last sample, overriding
// both imputed and supplied values there. Panics on NaN.
func WithRightGradient(g float64) Option {
	if math.IsNaN(g) {
		panic("spline: WithRightGradient(NaN)")
	}
	return func(c *config) {
		c.rightGrad = &g
	}
}

// gatherOptions applies opts over the documented defaults:
// imputed gradients, Curve extrapolation, no boundary overrides.
func gatherOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
