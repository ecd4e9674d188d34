package chunked_test

import (
	"fmt"

	"github.com/katalvlaran/lvlwin/chunked"
)

// ExampleMapOverlap sums each chunk together with a one-element halo
// borrowed from its neighbors (zero-filled at the array edges).
func ExampleMapOverlap() {
	arr, _ := chunked.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 3)

	sumBlock := func(block []float64, info chunked.BlockInfo) ([]float64, error) {
		if info.Probe() {
			return nil, nil
		}
		total := 0.0
		for _, v := range block {
			total += v
		}

		return []float64{total}, nil
	}

	out, err := chunked.MapOverlap(arr, sumBlock, 1, []int{1, 1}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Values()) // block 0: 0+1+2+3+4, block 1: 3+4+5+6+0
	// Output:
	// [10 18]
}

// ExampleArray_Rechunk merges the trailing chunks of a layout without
// touching the data.
func ExampleArray_Rechunk() {
	arr, _ := chunked.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 2, 2)
	merged, _ := arr.Rechunk([]int{2, 4})
	fmt.Println(merged.Chunks(), merged.Len())
	// Output:
	// [2 4] 6
}
