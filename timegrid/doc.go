// Package timegrid adapts shape-preserving splines to sample axes made
// of time.Time instants instead of plain reals.
//
// 🚀 What does it do?
//
//	Timestamps are reduced to fractional days since the Unix epoch, a
//	spline is built over that real axis, and every query/answer crosses
//	the same conversion on the way in and out. The spline itself is the
//	ordinary spline.Spline — timegrid is a thin, lossless adapter, not a
//	second implementation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/schumaker/timegrid"
//
//	ts, err := timegrid.New(stamps, levels,
//	  spline.WithExtrapolation(spline.Constant))
//	if err != nil { ... }
//	level := ts.At(time.Now())
//	total := ts.Integral(from, to) // value·days
//	for _, o := range ts.Optima() { fmt.Println(o.Time, o.Kind) }
//
// Units: derivatives are per day, integrals are value·days.
package timegrid
