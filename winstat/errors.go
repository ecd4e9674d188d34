// Package winstat: sentinel error set. Callers match with errors.Is;
// sentinels may be wrapped with fmt.Errorf("...: %w", Err) to attach
// the offending values.
package winstat

import "errors"

var (
	// ErrNilStatistic indicates a nil statistic function.
	ErrNilStatistic = errors.New("winstat: statistic must not be nil")

	// ErrChunkTooSmall indicates a chunking incompatible with the
	// requested window size: some chunk other than the last is shorter
	// than the window, so a window could span more than one chunk
	// boundary and exceed the halo the runtime can provide. This is the
	// one validated, user-facing configuration failure; it is raised
	// before any parallel work is scheduled.
	ErrChunkTooSmall = errors.New("winstat: minimum chunk length must not be smaller than size")

	// ErrBadWindows indicates window boundaries that are malformed with
	// respect to the array: length mismatch between starts and stops,
	// a start outside [0, length), or stop < start.
	ErrBadWindows = errors.New("winstat: invalid window boundaries")
)
