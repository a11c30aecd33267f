package spline

// New constructs a shape-preserving quadratic spline through the
// samples (x, y). x must be strictly increasing. Gradients are imputed
// unless supplied via WithGradients; WithLeftGradient and
// WithRightGradient override the boundary entries either way.
//
// Degenerate grids get the natural reading: one sample yields a
// constant spline (extrapolation is constant regardless of the
// requested scheme — there is no derivative information), two samples
// yield the connecting line (Curve and Linear then coincide).
//
// Errors: ErrEmptyInput on empty x, ErrLengthMismatch when x, y or
// supplied gradients disagree in length, ErrNonIncreasing when x is
// not strictly increasing. On error no partial spline is returned.
//
// Complexity: O(n) time and memory.
func New(x, y []float64, opts ...Option) (*Spline, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	cfg := gatherOptions(opts)
	if cfg.gradients != nil && len(cfg.gradients) != len(x) {
		return nil, ErrLengthMismatch
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, ErrNonIncreasing
		}
	}

	n := len(x)
	switch n {
	case 1:
		// A single zero-width constant piece; any query resolves to it.
		return assemble([]piece{{x[0], x[0], 0, 0, y[0]}}), nil
	case 2:
		slope := (y[1] - y[0]) / (x[1] - x[0])
		rows := []piece{{x[0], x[1], 0, slope, y[0]}}
		return assemble(extend(rows, cfg.scheme, x, y)), nil
	}

	grad := make([]float64, n)
	if cfg.gradients != nil {
		copy(grad, cfg.gradients)
	} else {
		copy(grad, estimateGradients(x, y))
	}
	if cfg.leftGrad != nil {
		grad[0] = *cfg.leftGrad
	}
	if cfg.rightGrad != nil {
		grad[n-1] = *cfg.rightGrad
	}

	rows := make([]piece, 0, 2*(n-1))
	for i := 0; i+1 < n; i++ {
		rows = append(rows,
			splitInterval(grad[i], grad[i+1], y[i], y[i+1], x[i], x[i+1])...)
	}

	return assemble(extend(rows, cfg.scheme, x, y)), nil
}

// extend applies the extrapolation policy by prepending and appending
// one synthetic unit-width piece each. The exact width is irrelevant to
// evaluation — the rows only have to own every query outside the data —
// but they must not overlap real pieces.
func extend(rows []piece, scheme Extrapolation, x, y []float64) []piece {
	if scheme == Curve {
		// The boundary quadratics extend beyond their nominal domain.
		return rows
	}

	x0, xn := x[0], x[len(x)-1]
	y0, yn := y[0], y[len(y)-1]
	var lo, hi piece
	switch scheme {
	case Linear:
		b0 := rows[0].b
		bn := rows[len(rows)-1].b
		lo = piece{x0 - 1, x0, 0, b0, y0 - b0}
		hi = piece{xn, xn + 1, 0, bn, yn}
	case Constant:
		lo = piece{x0 - 1, x0, 0, 0, y0}
		hi = piece{xn, xn + 1, 0, 0, yn}
	}

	out := make([]piece, 0, len(rows)+2)
	out = append(out, lo)
	out = append(out, rows...)
	return append(out, hi)
}
