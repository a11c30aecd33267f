// Package spline: core value types.
package spline

// Extrapolation selects how a spline behaves outside the sampled
// x-range. It is fixed at construction time and baked into the two
// boundary pieces; evaluation calls carry no extrapolation choice.
type Extrapolation int

const (
	// Curve extends the first and last quadratic pieces beyond their
	// nominal domain (no synthetic boundary pieces).
	Curve Extrapolation = iota

	// Linear extends both ends with the tangent line at the boundary.
	Linear

	// Constant holds the boundary sample values flat on both ends.
	Constant
)

// String returns the scheme name for logs and test output.
func (e Extrapolation) String() string {
	switch e {
	case Curve:
		return "Curve"
	case Linear:
		return "Linear"
	case Constant:
		return "Constant"
	default:
		return "Extrapolation(?)"
	}
}

// Spline is an immutable shape-preserving quadratic spline.
//
// It is a flat table of N quadratic pieces. Piece i covers
// [starts[i], ends[i]] and evaluates at local offset t = q - starts[i]
// as a*t² + b*t + c with (a, b, c) = coefs[i]. Pieces are sorted and
// non-overlapping; interior pieces are contiguous (starts[i+1] ==
// ends[i]), while extrapolation pieces are synthetic unit-width rows at
// each end. A Spline is built once and never mutated, so concurrent
// read-only use needs no locking.
type Spline struct {
	starts []float64
	ends   []float64
	coefs  [][3]float64
}

// NumPieces reports how many quadratic pieces the spline holds,
// including any synthetic extrapolation pieces.
func (s *Spline) NumPieces() int { return len(s.starts) }

// IntervalStarts returns a copy of the piece start positions.
func (s *Spline) IntervalStarts() []float64 {
	out := make([]float64, len(s.starts))
	copy(out, s.starts)
	return out
}

// IntervalEnds returns a copy of the piece end positions.
func (s *Spline) IntervalEnds() []float64 {
	out := make([]float64, len(s.ends))
	copy(out, s.ends)
	return out
}

// Coefficients returns a copy of the N×3 coefficient table (a, b, c).
func (s *Spline) Coefficients() [][3]float64 {
	out := make([][3]float64, len(s.coefs))
	copy(out, s.coefs)
	return out
}

// Domain reports the x-range covered by the spline's pieces, including
// any synthetic extrapolation pieces at the ends.
func (s *Spline) Domain() (lo, hi float64) {
	return s.starts[0], s.ends[len(s.ends)-1]
}

// Root is a zero crossing of a spline, with the spline's first and
// second derivative evaluated at the crossing.
type Root struct {
	X      float64 // crossing location (absolute x)
	Deriv  float64 // first derivative at X
	Deriv2 float64 // second derivative at X
}

// ExtremumKind classifies an interior optimum of a spline.
type ExtremumKind int

const (
	// Minimum marks a local minimum (second derivative > 0).
	Minimum ExtremumKind = iota
	// Maximum marks a local maximum (second derivative < 0).
	Maximum
	// SaddlePoint marks a stationary point with vanishing curvature.
	SaddlePoint
)

// String returns the kind name for logs and test output.
func (k ExtremumKind) String() string {
	switch k {
	case Minimum:
		return "Minimum"
	case Maximum:
		return "Maximum"
	case SaddlePoint:
		return "SaddlePoint"
	default:
		return "ExtremumKind(?)"
	}
}

// Optimum is an interior stationary point of a spline.
type Optimum struct {
	X    float64      // location of the stationary point
	Kind ExtremumKind // Minimum, Maximum or SaddlePoint
}

// piece is one row of the coefficient table during construction.
type piece struct {
	start, end float64
	a, b, c    float64
}

// assemble freezes an ordered piece list into an immutable Spline.
func assemble(rows []piece) *Spline {
	s := &Spline{
		starts: make([]float64, len(rows)),
		ends:   make([]float64, len(rows)),
		coefs:  make([][3]float64, len(rows)),
	}
	for i, r := range rows {
		s.starts[i] = r.start
		s.ends[i] = r.end
		s.coefs[i] = [3]float64{r.a, r.b, r.c}
	}
	return s
}
