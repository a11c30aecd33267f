package spline

import "math"

// machineEpsilon is the distance between 1.0 and the next float64.
const machineEpsilon = 0x1p-52

// knotCollapseTol decides when an internal knot has numerically
// collapsed onto an interval edge and one subinterval suffices.
const knotCollapseTol = 4 * machineEpsilon

// splitInterval realizes Judd's Lemma 6.11.1 / Algorithm 6.3 on a
// single input interval [t1, t2] with values (z1, z2) and gradients
// (s1, s2). It places one internal knot and returns the one or two
// quadratic pieces that interpolate both endpoints with matching
// gradients, are C¹ at the knot, and inherit the data's shape.
//
// Knot placement:
//   - if the single quadratic through both endpoints is already exact,
//     the knot sits at t2 and one piece suffices;
//   - if both gradients lie on the same side of the secant slope, the
//     knot sits at the midpoint;
//   - otherwise it is biased toward the endpoint whose gradient is
//     closer to the secant slope.
func splitInterval(s1, s2, z1, z2, t1, t2 float64) []piece {
	width := t2 - t1

	var tsi float64
	if (s1+s2)*width == 2*(z2-z1) {
		// The quadratic matching both endpoint gradients is exact.
		tsi = t2
	} else {
		delta := (z2 - z1) / width
		switch {
		case (s1-delta)*(s2-delta) >= 0:
			tsi = (t1 + t2) / 2
		case math.Abs(s2-delta) < math.Abs(s1-delta):
			tsi = t1 + width*(s2-delta)/(s2-s1)
		default:
			tsi = t2 + width*(s1-delta)/(s2-s1)
		}
	}

	alpha := tsi - t1
	beta := t2 - tsi
	sbar := (2*(z2-z1) - (alpha*s1 + beta*s2)) / width

	var a1 float64
	if alpha != 0 {
		a1 = (sbar - s1) / (2 * alpha)
	}
	first := piece{t1, tsi, a1, s1, z1}

	second := first
	if beta != 0 {
		// c continues the first quadratic's value at the knot.
		second = piece{tsi, t2, (s2 - sbar) / (2 * beta), sbar,
			(a1*alpha+s1)*alpha + z1}
	}

	switch {
	case tsi < t1+knotCollapseTol:
		// Knot collapsed left: the second piece covers everything.
		second.start, second.end = t1, t2
		return []piece{second}
	case tsi+knotCollapseTol > t2:
		// Knot collapsed right: the first piece covers everything.
		first.end = t2
		return []piece{first}
	default:
		return []piece{first, second}
	}
}
