package spline_test

import (
	"fmt"

	"github.com/katalvlaran/schumaker/spline"
)

// ExampleNew demonstrates constant extrapolation on a two-point grid:
// inside the data the spline is the connecting line, outside it holds
// the boundary values.
func ExampleNew() {
	s, err := spline.New(
		[]float64{0, 1},
		[]float64{0, 1},
		spline.WithExtrapolation(spline.Constant),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("left   %.1f\n", s.At(-1))
	fmt.Printf("inside %.1f\n", s.At(0.5))
	fmt.Printf("right  %.1f\n", s.At(2))
	// Output:
	// left   0.0
	// inside 0.5
	// right  1.0
}

// ExampleSpline_Roots finds the zero crossing of a line through
// (0, -1) and (1, 1).
func ExampleSpline_Roots() {
	s, err := spline.New(
		[]float64{0, 1},
		[]float64{-1, 1},
		spline.WithExtrapolation(spline.Constant),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range s.Roots() {
		fmt.Printf("root at x=%.2f, slope %.0f\n", r.X, r.Deriv)
	}
	// Output:
	// root at x=0.50, slope 2
}

// ExampleSpline_Optima classifies the stationary points of tent-shaped
// samples: a peak at x=1 and a dip at x=3.
func ExampleSpline_Optima() {
	s, err := spline.New(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, 1, 0, -1, 0},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, o := range s.Optima() {
		fmt.Printf("%s at x=%.2f\n", o.Kind, o.X)
	}
	// Output:
	// Maximum at x=1.00
	// Minimum at x=3.00
}

// ExampleSpline_Integral shows the signed, closed-form integral on a
// linear spline.
func ExampleSpline_Integral() {
	s, err := spline.New([]float64{0, 2}, []float64{0, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("forward  %.1f\n", s.Integral(0, 2))
	fmt.Printf("reversed %.1f\n", s.Integral(2, 0))
	// Output:
	// forward  4.0
	// reversed -4.0
}
