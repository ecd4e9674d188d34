// Package lvlwin computes statistics over sliding windows of large,
// chunk-partitioned numeric arrays — without ever holding the whole
// array in memory at once.
//
// 🚀 What is lvlwin?
//
//	A library for summarizing per-element values into per-window
//	aggregates over an array split into contiguous chunks, the unit of
//	parallel processing. Born from genomic-variant pipelines
//	(per-variant values → per-window diversity statistics over a
//	chromosome-scale axis), but the engine is plain index arithmetic
//	and works for any 1-D (or leading-axis) numeric data.
//
// ✨ What's inside?
//
//   - window/  — window boundary generation from a size/step spec
//   - chunked/ — an in-memory chunked-array runtime: rechunking and a
//     block-local apply with halo exchange between neighboring chunks
//   - winstat/ — the engine: maps global window coordinates onto the
//     chunk layout, resolves the halo ("depth"), rebalances trailing
//     chunks when needed, and reduces every window in parallel
//   - stats/   — ready-made reducers (sum, mean, variance, median, …)
//   - dataset/ — a named-array mapping with deterministic merge and a
//     front end that attaches window boundaries to a dataset
//
// ⚙️ Quick taste:
//
//	arr, _ := chunked.FromSlice(values, 5000, 5000, 5000)
//	res, err := winstat.MovingStatistic(arr, stats.Mean, 100, 100)
//
// Each chunk sees only its own data plus a bounded halo borrowed from
// the preceding chunk, so memory stays proportional to one chunk, and
// chunks reduce concurrently with no shared state.
//
// Known limitation: windows are pure index ranges over one axis — no
// time-based windows, and no contig/chromosome-boundary awareness.
//
//	go get github.com/katalvlaran/lvlwin
package lvlwin
