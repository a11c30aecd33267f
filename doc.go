// Package schumaker builds and evaluates shape-preserving quadratic
// splines — piecewise-quadratic interpolants that stay monotonic and
// convex/concave wherever the sampled data is, with no numerical
// optimization involved.
//
// 🚀 What is a Schumaker spline?
//
//	Given samples (x, y) and optional gradient estimates, the Schumaker
//	construction (Judd, Numerical Methods in Economics, Algorithm 6.3)
//	inserts at most one extra knot per interval and derives quadratic
//	coefficients that reproduce the data exactly while inheriting its
//	shape.  Typical uses:
//	  • Value-function and policy-function interpolation in economics
//	  • Monotone yield-curve and term-structure interpolation
//	  • Any setting where overshooting interpolants are unacceptable
//
// ✨ Why choose schumaker?
//
//   - Shape guarantees – monotonicity and convexity of the data carry
//     over to the spline, by construction
//   - C¹ everywhere – value and first derivative are continuous at knots
//   - Closed-form calculus – exact derivatives, integrals, roots and
//     optima, no quadrature or iteration
//   - Immutable splines – build once, evaluate concurrently without locks
//
// Everything is organized under two subpackages:
//
//	spline/   — construction, evaluation, integration, roots and optima
//	timegrid/ — adapter for samples indexed by time.Time instead of reals
//
// Quick sketch:
//
//	s, err := spline.New(x, y, spline.WithExtrapolation(spline.Constant))
//	if err != nil { ... }
//	v := s.At(2.5)
//	area := s.Integral(0, 10)
//	for _, opt := range s.Optima() { ... }
//
// Dive into the per-package doc.go files for the full contract, and into
// examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/schumaker/spline
package schumaker
