package window

import "errors"

// Sentinel errors for window boundary generation.
var (
	// ErrBadSize indicates a window size below 1.
	ErrBadSize = errors.New("window: size must be >= 1")
	// ErrBadStep indicates a step below 1.
	ErrBadStep = errors.New("window: step must be >= 1")
	// ErrBadRange indicates start < 0 or stop < start.
	ErrBadRange = errors.New("window: range must satisfy 0 <= start <= stop")
)

// Span is a half-open index range [Start, Stop) over an array's
// leading axis. Immutable once produced.
type Span struct {
	Start, Stop int
}

// Len returns the number of elements the span covers.
func (s Span) Len() int { return s.Stop - s.Start }

// Bounds produces the boundary indices of every window of the given
// size, stepped by step, covering [start, stop).
//
// Outputs are two equal-length, monotonically non-decreasing slices:
// starts[i] = start + i*step for every i with starts[i] < stop, and
// stops[i] = min(starts[i]+size, stop). The final stop always equals
// stop, so the range end is never lost to clamping.
//
// start == stop yields two empty slices and no error.
//
// Errors: ErrBadSize, ErrBadStep, ErrBadRange.
func Bounds(start, stop, size, step int) (starts, stops []int, err error) {
	if err = validate(start, stop, size, step); err != nil {
		return nil, nil, err
	}

	n := Count(start, stop, step)
	starts = make([]int, n)
	stops = make([]int, n)
	for i, s := 0, start; i < n; i, s = i+1, s+step {
		e := s + size
		if e > stop {
			e = stop
		}
		starts[i] = s
		stops[i] = e
	}

	return starts, stops, nil
}

// Spans is Bounds in struct form: one Span per window.
func Spans(start, stop, size, step int) ([]Span, error) {
	starts, stops, err := Bounds(start, stop, size, step)
	if err != nil {
		return nil, err
	}

	spans := make([]Span, len(starts))
	for i := range starts {
		spans[i] = Span{Start: starts[i], Stop: stops[i]}
	}

	return spans, nil
}

// Count returns the number of windows Bounds would produce over
// [start, stop) with the given step: ceil((stop-start)/step).
// Count does not validate its inputs; it returns 0 when stop <= start.
func Count(start, stop, step int) int {
	if stop <= start || step < 1 {
		return 0
	}

	return (stop - start + step - 1) / step
}

// validate checks the Bounds preconditions in documented priority
// order: size, then step, then range.
func validate(start, stop, size, step int) error {
	if size < 1 {
		return ErrBadSize
	}
	if step < 1 {
		return ErrBadStep
	}
	if start < 0 || stop < start {
		return ErrBadRange
	}

	return nil
}
