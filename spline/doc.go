// Package spline constructs and evaluates shape-preserving quadratic
// (Schumaker) splines over strictly increasing sample grids.
//
// 🚀 What does it do?
//
//	From samples (x, y) — and optional per-point gradients — the package
//	builds a piecewise-quadratic interpolant that is guaranteed monotone
//	and convex/concave wherever the data is.  Construction follows Judd's
//	Algorithm 6.3 (Lemma 6.11.1): per input interval, insert at most one
//	internal knot and derive coefficients (a, b, c) so that the spline is
//	C¹ at every knot and reproduces the samples exactly.
//
// ✨ Key features:
//   - gradient imputation when none are supplied (finite-difference
//     formula with zero gradients at local extrema)
//   - three extrapolation schemes baked in at build time:
//     Curve (default), Linear, Constant
//   - closed-form evaluation of value, derivatives, and definite
//     integrals, plus analytic root and optimum extraction
//   - immutable Spline values, safe for concurrent reads
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/schumaker/spline"
//
//	s, err := spline.New(x, y,
//	  spline.WithExtrapolation(spline.Linear),
//	  spline.WithLeftGradient(0),
//	)
//	if err != nil {
//	  // handle ErrEmptyInput / ErrLengthMismatch / ErrNonIncreasing
//	}
//	v := s.At(1.7)                // value
//	d, _ := s.Evaluate(1.7, 1)    // first derivative
//	area := s.Integral(0, 3)      // definite integral
//	roots := s.Roots()            // zero crossings
//	opts := s.Optima()            // interior minima / maxima
//
// Performance:
//
//   - Construction: O(n) time and memory in the sample count
//   - Evaluation:   O(n) worst case per query (ordered scan over
//     piece starts); constant for queries outside the sampled range
//
// See example_test.go for runnable examples.
package spline
