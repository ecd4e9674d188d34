package window_test

import (
	"testing"

	"github.com/katalvlaran/lvlwin/window"
)

// benchmarkBounds runs Bounds over a range of the given length with
// fixed size/step and fails on unexpected errors.
func benchmarkBounds(b *testing.B, length, size, step int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := window.Bounds(0, length, size, step); err != nil {
			b.Fatalf("Bounds failed: %v", err)
		}
	}
}

// BenchmarkBounds_Tumbling1M benchmarks non-overlapping windows over a
// million-element axis.
func BenchmarkBounds_Tumbling1M(b *testing.B) {
	benchmarkBounds(b, 1_000_000, 100, 100)
}

// BenchmarkBounds_Sliding1M benchmarks densely overlapping windows
// (step 1) over a million-element axis.
func BenchmarkBounds_Sliding1M(b *testing.B) {
	benchmarkBounds(b, 1_000_000, 100, 1)
}
