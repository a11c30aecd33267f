package spline

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// locate resolves a query point to the index of its owning piece: the
// last piece whose start is <= q, clamped to the first piece when q
// precedes every start. Queries beyond the last start land on the last
// piece, which then evaluates outside its nominal width.
func (s *Spline) locate(q float64) int {
	n := len(s.starts)
	if n == 1 || math.IsNaN(q) {
		return 0
	}
	if q < s.starts[0] {
		return 0
	}
	if q >= s.starts[n-1] {
		return n - 1
	}
	return floats.Within(s.starts, q)
}

// At evaluates the spline value at q. It is shorthand for
// Evaluate(q, 0), which cannot fail.
func (s *Spline) At(q float64) float64 {
	v, _ := s.Evaluate(q, 0)
	return v
}

// Evaluate computes the spline's derivative of the given order at q.
// Order 0 is the value itself, order 1 the slope, order 2 the (piecewise
// constant) curvature; orders above 2 are exactly zero for a quadratic.
// A negative order returns ErrNegativeOrder — definite integrals go
// through Integral, not this path.
func (s *Spline) Evaluate(q float64, order int) (float64, error) {
	if order < 0 {
		return 0, ErrNegativeOrder
	}
	i := s.locate(q)
	t := q - s.starts[i]
	c := s.coefs[i]
	switch order {
	case 0:
		return (c[0]*t+c[1])*t + c[2], nil
	case 1:
		return 2*c[0]*t + c[1], nil
	case 2:
		return 2 * c[0], nil
	default:
		return 0, nil
	}
}

// Integral computes the definite integral of the spline from lhs to
// rhs using the closed-form antiderivative of each piece. It is exact,
// signed (Integral(a, b) == -Integral(b, a)) and additive over
// adjacent ranges; both properties fall out of the cumulative
// formulation rather than being special-cased.
func (s *Spline) Integral(lhs, rhs float64) float64 {
	return s.cumulative(rhs) - s.cumulative(lhs)
}

// cumulative is the signed antiderivative measured from the first piece
// start: full closed-form integrals of every piece below q's piece,
// plus the partial integral within it. Contiguity of the piece table
// makes the telescoped sum equal the true integral.
func (s *Spline) cumulative(q float64) float64 {
	k := s.locate(q)
	var total float64
	for i := 0; i < k; i++ {
		total += antiderivative(s.coefs[i], s.ends[i]-s.starts[i])
	}
	return total + antiderivative(s.coefs[k], q-s.starts[k])
}

// antiderivative evaluates (a/3)t³ + (b/2)t² + c·t at local offset t.
func antiderivative(c [3]float64, t float64) float64 {
	return ((c[0]/3*t+c[1]/2)*t + c[2]) * t
}
