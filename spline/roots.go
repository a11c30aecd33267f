package spline

import "math"

// Numeric policy for root extraction. These are tolerances, not error
// conditions: near-degenerate quadratics fall back to the linear
// solution, and a root re-detected at a shared knot is folded into its
// predecessor.
const (
	// linearCoefTol treats |a| below this as a linear piece.
	linearCoefTol = 1e-13
	// rootBoundTol widens the (0, width) membership test for candidates.
	rootBoundTol = 1e-13
	// duplicateRootTol merges roots closer than this to the previous one.
	duplicateRootTol = 1e-5
)

// Derivative returns a new spline over the same interval partition
// whose pieces are the analytic derivative of the receiver's:
// (a, b, c) → (0, 2a, b). The result shares no state with the receiver.
func (s *Spline) Derivative() *Spline {
	d := &Spline{
		starts: make([]float64, len(s.starts)),
		ends:   make([]float64, len(s.ends)),
		coefs:  make([][3]float64, len(s.coefs)),
	}
	copy(d.starts, s.starts)
	copy(d.ends, s.ends)
	for i, c := range s.coefs {
		d.coefs[i] = [3]float64{0, 2 * c[0], c[1]}
	}
	return d
}

// Roots extracts the spline's zero crossings in ascending order, each
// with the spline's first and second derivative at the crossing.
//
// The scan flags a piece whenever its constant term changes sign
// against the next piece's: by C⁰ continuity the next constant term is
// this piece's value at its right edge, so a sign flip pins exactly one
// crossing inside (or at the boundary of) the flagged piece. Each
// flagged piece is then solved in closed form.
func (s *Spline) Roots() []Root {
	var roots []Root
	for i := 0; i+1 < len(s.coefs); i++ {
		if sign(s.coefs[i][2]) == sign(s.coefs[i+1][2]) {
			continue
		}
		a, b, c := s.coefs[i][0], s.coefs[i][1], s.coefs[i][2]
		width := s.ends[i] - s.starts[i]

		if math.Abs(a) < linearCoefTol {
			t := -c / b
			x := s.starts[i] + t
			// A crossing sitting on a shared knot shows up in both
			// neighboring pieces; keep the first sighting only.
			if len(roots) > 0 && math.Abs(x-roots[len(roots)-1].X) < duplicateRootTol {
				continue
			}
			roots = append(roots, Root{X: x, Deriv: 2*a*t + b, Deriv2: 2 * a})
			continue
		}

		// The sign flip guarantees a real crossing, so the discriminant
		// is non-negative up to rounding. Both candidates are checked
		// against the piece bounds: when a sample hits zero exactly the
		// crossing sits on a knot and one candidate degenerates to the
		// piece edge while the other may land far outside.
		sq := math.Sqrt(b*b - 4*a*c)
		t := (-b + sq) / (2 * a)
		if t <= rootBoundTol || t >= width+rootBoundTol {
			t = (-b - sq) / (2 * a)
			if t < -rootBoundTol || t > width+rootBoundTol {
				// No candidate inside the piece: the crossing was the
				// shared knot, already owned by a neighboring piece.
				continue
			}
		}
		x := s.starts[i] + t
		if len(roots) > 0 && math.Abs(x-roots[len(roots)-1].X) < duplicateRootTol {
			continue
		}
		roots = append(roots, Root{X: x, Deriv: 2*a*t + b, Deriv2: 2 * a})
	}
	return roots
}

// Optima finds the spline's interior stationary points by extracting
// the roots of the derivative spline, and classifies each one by the
// derivative spline's own slope there (the original curvature):
// positive → Minimum, negative → Maximum, zero → SaddlePoint.
// Each optimum is classified independently.
func (s *Spline) Optima() []Optimum {
	dRoots := s.Derivative().Roots()
	out := make([]Optimum, len(dRoots))
	for i, r := range dRoots {
		kind := SaddlePoint
		switch {
		case r.Deriv > 0:
			kind = Minimum
		case r.Deriv < 0:
			kind = Maximum
		}
		out[i] = Optimum{X: r.X, Kind: kind}
	}
	return out
}

// sign is the three-way sign used by the crossing scan.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
