package window_test

import (
	"fmt"

	"github.com/katalvlaran/lvlwin/window"
)

// ExampleBounds demonstrates tumbling windows over a 10-element axis:
// the last window is clamped at the array end.
func ExampleBounds() {
	starts, stops, err := window.Bounds(0, 10, 3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("starts:", starts)
	fmt.Println("stops: ", stops)
	// Output:
	// starts: [0 3 6 9]
	// stops:  [3 6 9 10]
}

// ExampleSpans demonstrates overlapping windows (step < size).
func ExampleSpans() {
	spans, _ := window.Spans(0, 7, 4, 2)
	for _, s := range spans {
		fmt.Printf("[%d,%d) len=%d\n", s.Start, s.Stop, s.Len())
	}
	// Output:
	// [0,4) len=4
	// [2,6) len=4
	// [4,7) len=3
	// [6,7) len=1
}
