// Package spline: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Algorithms never panic on user input; panics are confined to
//     option constructors (WithX...) receiving nonsensical arguments.
//   - Numeric edge cases (near-degenerate intervals, tiny denominators)
//     are tolerance policy, not errors, and never surface here.
package spline

import "errors"

var (
	// ErrEmptyInput indicates the x sample slice is empty.
	ErrEmptyInput = errors.New("spline: x must be non-empty")

	// ErrLengthMismatch indicates x, y, and any supplied gradients do not
	// share the same length.
	ErrLengthMismatch = errors.New("spline: x, y and gradients must have equal length")

	// ErrNonIncreasing indicates the x samples are not strictly increasing.
	ErrNonIncreasing = errors.New("spline: x must be strictly increasing")

	// ErrNegativeOrder indicates a negative derivative order was passed to
	// Evaluate. Integration goes through Integral, not a negative order.
	ErrNegativeOrder = errors.New("spline: negative derivative order; use Integral instead")
)
