package chunked_test

import (
	"testing"

	"github.com/katalvlaran/lvlwin/chunked"
)

// benchmarkMapOverlap runs a per-chunk sum over n elements split into
// blocks-sized chunks with the given halo depth.
func benchmarkMapOverlap(b *testing.B, n, chunkLen, depth int) {
	data := make([]float64, n)
	chunks := make([]int, 0, n/chunkLen)
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
	out := make([]int, len(chunks))
	for i := range out {
		out[i] = 1
	}

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

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = chunked.MapOverlap(arr, sumBlock, depth, out, nil); err != nil {
			b.Fatalf("MapOverlap failed: %v", err)
		}
	}
}

// BenchmarkMapOverlap_1M_NoHalo benchmarks plain blockwise application.
func BenchmarkMapOverlap_1M_NoHalo(b *testing.B) {
	benchmarkMapOverlap(b, 1_000_000, 10_000, 0)
}

// BenchmarkMapOverlap_1M_Halo100 benchmarks with a 100-element halo.
func BenchmarkMapOverlap_1M_Halo100(b *testing.B) {
	benchmarkMapOverlap(b, 1_000_000, 10_000, 100)
}
