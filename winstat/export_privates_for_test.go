package winstat

// Test bridge: expose the planning helpers to winstat_test without
// widening the production API. The pipeline entry points exercise them
// end to end; white-box tests pin their index arithmetic directly.

var (
	// ChunkedWindowsForTest exposes the chunk boundary mapper.
	ChunkedWindowsForTest = chunkedWindows
	// StartOffsetsForTest exposes the sizes→offsets prefix sum.
	StartOffsetsForTest = startOffsets
	// ResolveHaloForTest exposes the halo resolver/rebalancer over
	// float64 arrays.
	ResolveHaloForTest = resolveHalo[float64]
)
