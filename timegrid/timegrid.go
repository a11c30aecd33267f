package timegrid

import (
	"math"
	"time"

	"github.com/katalvlaran/schumaker/spline"
)

// secondsPerDay converts between the time axis and the real axis.
const secondsPerDay = 24 * 60 * 60

// ToDays reduces an instant to fractional days since the Unix epoch.
func ToDays(t time.Time) float64 {
	return float64(t.Unix())/secondsPerDay +
		float64(t.Nanosecond())/(secondsPerDay*1e9)
}

// FromDays is the inverse of ToDays, up to nanosecond rounding.
func FromDays(d float64) time.Time {
	sec, frac := math.Modf(d * secondsPerDay)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// TimeSpline is a shape-preserving spline over a time axis.
type TimeSpline struct {
	s *spline.Spline
}

// TimeOptimum is an interior stationary point on the time axis.
type TimeOptimum struct {
	Time time.Time
	Kind spline.ExtremumKind
}

// New builds a spline through (times, y). Times must be strictly
// increasing; all spline.Option values apply unchanged. Errors are the
// spline package sentinels.
func New(times []time.Time, y []float64, opts ...spline.Option) (*TimeSpline, error) {
	if len(times) != len(y) {
		return nil, spline.ErrLengthMismatch
	}
	x := make([]float64, len(times))
	for i, ts := range times {
		x[i] = ToDays(ts)
	}
	s, err := spline.New(x, y, opts...)
	if err != nil {
		return nil, err
	}
	return &TimeSpline{s: s}, nil
}

// Spline exposes the underlying real-axis spline (days since epoch).
func (ts *TimeSpline) Spline() *spline.Spline { return ts.s }

// At evaluates the spline value at an instant.
func (ts *TimeSpline) At(t time.Time) float64 { return ts.s.At(ToDays(t)) }

// Evaluate computes the derivative of the given order at an instant.
// Order 1 is a per-day rate, order 2 per day squared.
func (ts *TimeSpline) Evaluate(t time.Time, order int) (float64, error) {
	return ts.s.Evaluate(ToDays(t), order)
}

// Integral computes the definite integral between two instants, in
// value·days. Reversed bounds negate the result.
func (ts *TimeSpline) Integral(from, to time.Time) float64 {
	return ts.s.Integral(ToDays(from), ToDays(to))
}

// Roots lists the instants where the spline crosses zero.
func (ts *TimeSpline) Roots() []time.Time {
	roots := ts.s.Roots()
	out := make([]time.Time, len(roots))
	for i, r := range roots {
		out[i] = FromDays(r.X)
	}
	return out
}

// Optima lists the interior stationary points with their classification.
func (ts *TimeSpline) Optima() []TimeOptimum {
	optima := ts.s.Optima()
	out := make([]TimeOptimum, len(optima))
	for i, o := range optima {
		out[i] = TimeOptimum{Time: FromDays(o.X), Kind: o.Kind}
	}
	return out
}
