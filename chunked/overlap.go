package chunked

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BlockInfo carries runtime metadata into a block function invocation.
type BlockInfo struct {
	// Ordinal is the block's position along the chunked axis, or -1 for
	// the probe call issued before dispatch.
	Ordinal int
	// Blocks is the total number of blocks in the computation.
	Blocks int
}

// Probe reports whether this invocation is the coordination-only probe
// call: empty input, and the function must return an empty result.
func (bi BlockInfo) Probe() bool { return bi.Ordinal < 0 }

// BlockFunc is the block-local computation for MapOverlap. It receives
// one chunk's data extended by the halo on each side, plus metadata,
// and returns that block's output elements.
//
// A BlockFunc must be pure with respect to shared state: invocations
// run concurrently, in any order, each on an immutable input slice.
type BlockFunc[T, R any] func(block []T, info BlockInfo) ([]R, error)

// OverlapOptions configures MapOverlap.
//
// Fields:
//   - Fill        — boundary value used where the halo reaches past
//     either end of the array (the zero value of T by default).
//   - Parallelism — maximum number of blocks computed concurrently;
//     values < 1 mean GOMAXPROCS.
type OverlapOptions[T any] struct {
	Fill        T
	Parallelism int
}

// DefaultOverlapOptions returns OverlapOptions with the zero boundary
// fill and GOMAXPROCS parallelism.
func DefaultOverlapOptions[T any]() OverlapOptions[T] {
	return OverlapOptions[T]{}
}

// MapOverlap — block-local apply with halo exchange.
//
// Description:
//
//	Invokes fn once per chunk of a, passing the chunk's data extended
//	by depth elements on EACH side, drawn from the immediately
//	neighboring chunks (opts.Fill where an array edge is reached), and
//	assembles the per-block outputs into a new Array chunked as
//	outChunks.
//
// Contract:
//  1. outChunks declares one output chunk length per block of a
//     (zero-length entries are legal: a block may own no output).
//  2. depth must not exceed any chunk's length — the halo never reaches
//     more than one chunk away. Violations return ErrDepthTooLarge
//     before any block runs.
//  3. Before dispatch, fn is probed once with an empty block and
//     Ordinal == -1; it must return an empty result (ErrProbe).
//  4. Blocks execute concurrently (bounded by opts.Parallelism), in any
//     order, each writing a disjoint output slice. The first error
//     cancels the computation and is returned; fn errors propagate
//     unwrapped so callers can match them with errors.Is.
//
// Errors: ErrNilArray, ErrNilFunc, ErrBadDepth, ErrDepthTooLarge,
// ErrBadChunks, ErrProbe, ErrBlockShape, and any error from fn.
func MapOverlap[T, R any](a *Array[T], fn BlockFunc[T, R], depth int, outChunks []int, opts *OverlapOptions[T]) (*Array[R], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	if depth < 0 {
		return nil, ErrBadDepth
	}
	if len(outChunks) != len(a.chunks) {
		return nil, fmt.Errorf("%w: %d output chunks declared for %d blocks",
			ErrBadChunks, len(outChunks), len(a.chunks))
	}
	for _, c := range a.chunks {
		if depth > c {
			return nil, fmt.Errorf("%w: depth %d, chunk length %d", ErrDepthTooLarge, depth, c)
		}
	}

	def := DefaultOverlapOptions[T]()
	if opts == nil {
		opts = &def
	}
	par := opts.Parallelism
	if par < 1 {
		par = runtime.GOMAXPROCS(0)
	}

	n := len(a.chunks)

	// Probe: coordination-only call, must short-circuit to empty.
	probe, err := fn(nil, BlockInfo{Ordinal: -1, Blocks: n})
	if err != nil {
		return nil, err
	}
	if len(probe) != 0 {
		return nil, ErrProbe
	}

	inOff := offsets(a.chunks)
	outOff := offsets(outChunks)
	results := make([]R, outOff[n])

	var g errgroup.Group
	g.SetLimit(par)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			out, blockErr := fn(extend(a, i, inOff, depth, opts.Fill), BlockInfo{Ordinal: i, Blocks: n})
			if blockErr != nil {
				return blockErr
			}
			if len(out) != outChunks[i] {
				return fmt.Errorf("%w: block %d produced %d elements, declared %d",
					ErrBlockShape, i, len(out), outChunks[i])
			}
			// Disjoint destination slice per block; no locking needed.
			copy(results[outOff[i]:outOff[i+1]], out)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &Array[R]{data: results, chunks: append([]int(nil), outChunks...)}, nil
}

// extend builds block i's input: depth halo elements on each side of
// the chunk's own data, filled where an array edge is reached.
func extend[T any](a *Array[T], i int, inOff []int, depth int, fill T) []T {
	start, stop := inOff[i], inOff[i+1]
	ext := make([]T, (stop-start)+2*depth)
	for j := 0; j < depth; j++ {
		if src := start - depth + j; src < 0 {
			ext[j] = fill
		} else {
			ext[j] = a.data[src]
		}
	}
	copy(ext[depth:], a.data[start:stop])
	right := depth + stop - start
	for j := 0; j < depth; j++ {
		if src := stop + j; src >= len(a.data) {
			ext[right+j] = fill
		} else {
			ext[right+j] = a.data[src]
		}
	}

	return ext
}
