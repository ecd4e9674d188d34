package winstat_test

import (
	"testing"

	"github.com/katalvlaran/lvlwin/chunked"
	"github.com/katalvlaran/lvlwin/winstat"
)

// benchmarkMoving runs MovingStatistic(sum) over n elements in
// chunkLen-sized chunks.
func benchmarkMoving(b *testing.B, n, chunkLen, size, step int) {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i % 97)
	}
	chunks := make([]int, 0, n/chunkLen+1)
	for rest := n; rest > 0; rest -= chunkLen {
		c := chunkLen
		if rest < c {
			c = rest
		}
		chunks = append(chunks, c)
	}
	arr, err := chunked.FromSlice(data, chunks...)
	if err != nil {
		b.Fatalf("FromSlice failed: %v", err)
	}

	sum := func(win []float64) (float64, error) {
		total := 0.0
		for _, v := range win {
			total += v
		}

		return total, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = winstat.MovingStatistic(arr, sum, size, step); err != nil {
			b.Fatalf("MovingStatistic failed: %v", err)
		}
	}
}

// BenchmarkMovingStatistic_Tumbling benchmarks non-overlapping windows:
// 1M elements, 10k chunks, 100/100 windows.
func BenchmarkMovingStatistic_Tumbling(b *testing.B) {
	benchmarkMoving(b, 1_000_000, 10_000, 100, 100)
}

// BenchmarkMovingStatistic_Overlapping benchmarks half-overlapping
// windows: 1M elements, 10k chunks, 100/50 windows.
func BenchmarkMovingStatistic_Overlapping(b *testing.B) {
	benchmarkMoving(b, 1_000_000, 10_000, 100, 50)
}
