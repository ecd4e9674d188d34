// Package window derives window boundary indices from a size/step
// specification over a half-open integer range.
//
// 🚀 What is a window?
//
//	A half-open index range [start, stop) selecting a contiguous slice
//	of an array for one aggregate computation. Given a range, a window
//	size and a step, this package produces every window covering the
//	range, in increasing start order:
//
//	  starts[i] = start + i*step        while starts[i] < stop
//	  stops[i]  = min(starts[i]+size, stop)
//
//	Windows may overlap (step < size) or leave gaps (step > size); the
//	last window is clamped at the range end.
//
// ✨ Key properties:
//   - pure integer arithmetic, no allocation beyond the two outputs
//   - start ≤ s < e ≤ stop and e−s ≤ size for every produced window
//   - exactly ⌈(stop−start)/step⌉ windows; zero when start == stop
//
// ⚙️ Usage:
//
//	starts, stops, err := window.Bounds(0, length, size, step)
//	// or, struct form:
//	spans, err := window.Spans(0, length, size, step)
//
// Inputs are validated: size and step must be ≥ 1, and the range must
// satisfy 0 ≤ start ≤ stop. See ErrBadSize, ErrBadStep, ErrBadRange.
package window
