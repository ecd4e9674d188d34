package stats_test

import (
	"fmt"

	"github.com/katalvlaran/lvlwin/chunked"
	"github.com/katalvlaran/lvlwin/stats"
	"github.com/katalvlaran/lvlwin/winstat"
)

// ExampleMean plugs a ready-made reducer into the windowed engine.
func ExampleMean() {
	arr, _ := chunked.FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5, 5)

	res, err := winstat.MovingStatistic(arr, stats.Mean, 5, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Values())
	// Output:
	// [2 7]
}

// ExampleQuantile shows closure-captured configuration: the quantile
// travels with the reducer into every window.
func ExampleQuantile() {
	arr, _ := chunked.FromSlice([]float64{9, 1, 8, 2, 7, 3, 6, 4}, 4, 4)

	res, err := winstat.MovingStatistic(arr, stats.Quantile(0.5), 4, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Values())
	// Output:
	// [2 4]
}
