package winstat

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlwin/chunked"
	"github.com/katalvlaran/lvlwin/window"
)

// Statistic is the opaque per-window reducer: a pure function from a
// window's raw values to one fixed-shape result. Per-statistic
// configuration is captured in the closure. An error fails the whole
// windowed computation.
//
// Statistics run concurrently across chunks and must not share mutable
// state between invocations.
type Statistic[T, R any] func(win []T) (R, error)

// WindowStatistic — evaluate a statistic over explicit window boundaries.
//
// Description:
//
//	Computes stat over every half-open window [starts[i], stops[i]) of
//	values, returning one result element per window, in window order,
//	chunked by the number of windows landing in each chunk of values.
//
// Algorithm Outline:
//  1. Validate boundaries against the array length.
//  2. Resolve the halo: depth = max window length. If depth exceeds the
//     last chunk, merge the trailing two chunks (rebalance) so the halo
//     exchange never reaches more than one chunk away.
//  3. Map windows onto the (possibly rebalanced) layout: for each
//     window, the chunk containing its start and the start offset
//     relative to that chunk; plus one window count per chunk,
//     including zero counts.
//  4. Reduce per chunk via chunked.MapOverlap with the chunk's data
//     extended by depth elements on each side (zero-filled at the
//     array edges): slice each window at [rel+depth : rel+depth+len] —
//     the +depth accounts for the left extension; windows spilling
//     past the chunk's right edge complete from the right halo — and
//     apply stat.
//
// Degenerate inputs are not errors: zero windows yield an empty result;
// a zero-length window yields stat of an empty slice.
//
// Errors: chunked.ErrNilArray, ErrNilStatistic, ErrBadWindows,
// chunked.ErrDepthTooLarge (layout the rebalance cannot fix), and any
// error from stat, unwrapped.
func WindowStatistic[T, R any](values *chunked.Array[T], stat Statistic[T, R], starts, stops []int) (*chunked.Array[R], error) {
	if values == nil {
		return nil, chunked.ErrNilArray
	}
	if stat == nil {
		return nil, ErrNilStatistic
	}
	if err := checkWindows(values.Len(), starts, stops); err != nil {
		return nil, err
	}

	depth, values, err := resolveHalo(values, starts, stops)
	if err != nil {
		return nil, err
	}

	relStarts, perChunk := chunkedWindows(values.Chunks(), starts)

	// Offset by depth to account for the left halo extension.
	relStops := make([]int, len(relStarts))
	for i := range relStarts {
		relStarts[i] += depth
		relStops[i] = relStarts[i] + (stops[i] - starts[i])
	}
	winOff := startOffsets(perChunk)

	block := func(x []T, info chunked.BlockInfo) ([]R, error) {
		if info.Probe() || len(x) == 0 {
			return nil, nil
		}
		lo, hi := winOff[info.Ordinal], winOff[info.Ordinal+1]
		out := make([]R, hi-lo)
		for w := lo; w < hi; w++ {
			v, statErr := stat(x[relStarts[w]:relStops[w]])
			if statErr != nil {
				return nil, statErr
			}
			out[w-lo] = v
		}

		return out, nil
	}

	return chunked.MapOverlap(values, block, depth, perChunk, nil)
}

// MovingStatistic — evaluate a statistic over size/step windows
// covering the full array.
//
// The chunking must be coarse enough for the halo exchange: the
// minimum chunk length, ignoring the last chunk, must be at least
// size. Violations return ErrChunkTooSmall before any window is
// generated or any parallel work is scheduled.
//
// Delegates to window.Bounds(0, length, size, step) and then the
// WindowStatistic pipeline, so window.ErrBadSize / window.ErrBadStep
// surface for a degenerate size or step.
func MovingStatistic[T, R any](values *chunked.Array[T], stat Statistic[T, R], size, step int) (*chunked.Array[R], error) {
	if values == nil {
		return nil, chunked.ErrNilArray
	}
	if stat == nil {
		return nil, ErrNilStatistic
	}

	if chunks := values.Chunks(); len(chunks) > 0 {
		interior := chunks
		if len(chunks) > 1 {
			interior = chunks[:len(chunks)-1] // last chunk may be a remainder
		}
		minLen := interior[0]
		for _, c := range interior[1:] {
			if c < minLen {
				minLen = c
			}
		}
		if minLen < size {
			return nil, fmt.Errorf("%w: minimum chunk length %d, size %d", ErrChunkTooSmall, minLen, size)
		}
	}

	starts, stops, err := window.Bounds(0, values.Len(), size, step)
	if err != nil {
		return nil, err
	}

	return WindowStatistic(values, stat, starts, stops)
}

// checkWindows validates window boundaries against the array length:
// parallel slices, 0 <= start <= stop <= length, start < length.
func checkWindows(length int, starts, stops []int) error {
	if len(starts) != len(stops) {
		return fmt.Errorf("%w: %d starts, %d stops", ErrBadWindows, len(starts), len(stops))
	}
	for i := range starts {
		if starts[i] < 0 || starts[i] >= length || stops[i] < starts[i] || stops[i] > length {
			return fmt.Errorf("%w: window %d is [%d,%d) over length %d",
				ErrBadWindows, i, starts[i], stops[i], length)
		}
	}

	return nil
}

// resolveHalo computes the halo depth (the maximum window length; 0
// when there are no windows) and, when the depth exceeds the LAST
// chunk's length, merges the trailing two chunks so the halo exchange
// never needs to reach more than one chunk away.
//
// The transform is corrective, not validating, and idempotent on any
// layout whose interior chunks are at least depth long: a second run
// finds the merged last chunk already large enough.
func resolveHalo[T any](values *chunked.Array[T], starts, stops []int) (int, *chunked.Array[T], error) {
	depth := 0
	for i := range starts {
		if l := stops[i] - starts[i]; l > depth {
			depth = l
		}
	}

	chunks := values.Chunks()
	if n := len(chunks); n >= 2 && depth > chunks[n-1] {
		merged := append(chunks[:n-2], chunks[n-2]+chunks[n-1])
		rebalanced, err := values.Rechunk(merged)
		if err != nil {
			return 0, nil, err
		}

		return depth, rebalanced, nil
	}

	return depth, values, nil
}

// chunkedWindows maps global window starts onto a chunk layout: for
// each window, its start offset relative to the chunk containing it,
// and one window count per chunk.
//
// The chunk containing a start is found right-biased over the chunk
// start offsets — the last chunk whose start offset does not exceed
// the window start — so zero-length chunks (which share a start offset
// with their successor) are never assigned windows.
//
// perChunk has exactly one entry per chunk, zeros included: the
// downstream output chunking needs an entry even for chunks that own
// no windows.
func chunkedWindows(chunks []int, starts []int) (relStarts, perChunk []int) {
	chunkStarts := startOffsets(chunks)

	relStarts = make([]int, len(starts))
	perChunk = make([]int, len(chunks))
	for i, s := range starts {
		// First offset strictly greater than s, minus one: the last
		// chunk boundary not exceeding the window start.
		c := sort.SearchInts(chunkStarts, s+1) - 1
		relStarts[i] = s - chunkStarts[c]
		perChunk[c]++
	}

	return relStarts, perChunk
}

// startOffsets converts an ordered list of sizes to cumulative start
// offsets beginning at 0; the extra trailing entry is the total.
func startOffsets(sizes []int) []int {
	off := make([]int, len(sizes)+1)
	for i, s := range sizes {
		off[i+1] = off[i] + s
	}

	return off
}
