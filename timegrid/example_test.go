package timegrid_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/schumaker/spline"
	"github.com/katalvlaran/schumaker/timegrid"
)

// ExampleNew interpolates a daily level series and reads it back at a
// timestamp between samples.
func ExampleNew() {
	t0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ts, err := timegrid.New(
		[]time.Time{t0, t0.Add(48 * time.Hour)},
		[]float64{0, 2},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("level after one day: %.1f\n", ts.At(t0.Add(24*time.Hour)))
	// Output:
	// level after one day: 1.0
}

// ExampleTimeSpline_Roots pins the instant a sampled level crosses zero.
func ExampleTimeSpline_Roots() {
	t0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ts, err := timegrid.New(
		[]time.Time{t0, t0.Add(48 * time.Hour)},
		[]float64{-1, 1},
		spline.WithExtrapolation(spline.Constant),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range ts.Roots() {
		fmt.Println(r.Round(time.Second).Format("2006-01-02"))
	}
	// Output:
	// 2024-01-02
}
