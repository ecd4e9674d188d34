// Package chunked provides an in-memory chunked-array runtime: a 1-D
// (or leading-axis) sequence partitioned into contiguous chunks, with
// rechunking and a block-local apply that exchanges a bounded halo
// between neighboring chunks.
//
// 🚀 Why chunks?
//
//	A chunk is the unit of parallel processing. Computations that only
//	need a chunk's own data — plus a bounded number of elements
//	borrowed from the neighboring chunks (the "halo", or depth) — can
//	run concurrently over all chunks with memory proportional to one
//	chunk, never materializing the whole array in a single computation.
//
// ✨ Primitives:
//
//   - Array[T]    — contiguous values + ordered chunk lengths; Chunks()
//     reports the layout, Block(i) views one chunk
//   - Rechunk     — re-partition the same data under new chunk lengths
//   - MapOverlap  — invoke a BlockFunc once per chunk with the chunk's
//     data extended by `depth` elements on each side (boundary-filled
//     at the array edges), assembling results under a declared output
//     chunking; blocks run concurrently, first error cancels
//
// ⚙️ Usage:
//
//	arr, _ := chunked.FromSlice(data, 4, 3, 3)
//	out, err := chunked.MapOverlap(arr, fn, depth, outChunks, nil)
//
// MapOverlap issues one probe call (empty block, Ordinal == -1) before
// dispatching real blocks; a BlockFunc must answer the probe with an
// empty result. Block functions must be pure with respect to shared
// state: each invocation reads an immutable input slice and produces
// its own output slice, in any order, concurrently.
//
// Scheduling is task-parallel within the process. Distributed
// placement, retries and fault tolerance are out of scope.
package chunked
