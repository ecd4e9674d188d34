// Package chunked: sentinel error set. All public operations return
// these sentinels (optionally wrapped with context via %w) and tests
// match them with errors.Is. No operation panics on user input.
package chunked

import "errors"

var (
	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("chunked: nil array")

	// ErrNilFunc indicates a nil block function passed to MapOverlap.
	ErrNilFunc = errors.New("chunked: block function must not be nil")

	// ErrBadChunks indicates chunk lengths that are negative or do not
	// sum to the array length, or an output chunking whose entry count
	// differs from the number of blocks.
	ErrBadChunks = errors.New("chunked: invalid chunk lengths")

	// ErrBadDepth indicates a negative halo depth.
	ErrBadDepth = errors.New("chunked: depth must be >= 0")

	// ErrDepthTooLarge indicates a halo depth exceeding some chunk's
	// length: the halo would have to reach more than one chunk away.
	ErrDepthTooLarge = errors.New("chunked: depth exceeds a chunk length")

	// ErrBlockIndex indicates a block ordinal outside [0, Blocks()).
	ErrBlockIndex = errors.New("chunked: block index out of range")

	// ErrProbe indicates a block function that answered the empty probe
	// call with a non-empty result.
	ErrProbe = errors.New("chunked: probe call must return an empty result")

	// ErrBlockShape indicates a block whose output length differs from
	// the declared output chunk length.
	ErrBlockShape = errors.New("chunked: block output length does not match declared output chunk")
)
