// Package winstat is the windowed-statistic engine: it evaluates an
// arbitrary reduction function over sliding windows of a chunked
// array, using only a bounded halo between adjacent chunks — the whole
// array is never materialized in one computation.
//
// 🚀 How it works
//
//	Global window boundaries (from package window) are mapped onto the
//	chunk layout: each window belongs to the chunk containing its
//	start, at a start offset relative to that chunk. The halo ("depth")
//	is the maximum window length — enough neighboring elements for a
//	chunk to finish any window that starts near its right boundary and
//	spills into the next chunk. When the halo exceeds the LAST chunk's
//	length, the trailing two chunks are merged (rebalanced) so the
//	runtime's halo exchange never reaches more than one chunk away.
//	Each chunk then reduces its own windows concurrently via
//	chunked.MapOverlap, and the results assemble into one output
//	element per window, chunked by windows-per-chunk.
//
// ✨ Entry points:
//
//   - WindowStatistic — explicit window boundaries → per-window results
//   - MovingStatistic — size/step specification over the full array;
//     validates that no chunk except possibly the last is smaller than
//     the window size (ErrChunkTooSmall)
//
// ⚙️ Usage:
//
//	arr, _ := chunked.FromSlice(values, 5000, 5000, 5000)
//	res, err := winstat.MovingStatistic(arr, stats.Sum, 100, 100)
//
// The statistic is an opaque pure function from a window's raw values
// to a fixed-shape result; per-statistic configuration is captured in
// its closure. A statistic error fails the whole computation — there
// is no partial-result policy.
//
// Planning (boundary generation, chunk mapping, halo resolution) is
// synchronous index arithmetic over chunk metadata; only the
// per-chunk reduction runs in parallel.
//
// Known limitation: rebalancing inspects only the last chunk. A very
// small interior chunk combined with a large depth is rejected by
// MovingStatistic's size check on the validated path, and surfaces as
// chunked.ErrDepthTooLarge on the raw WindowStatistic path.
package winstat
