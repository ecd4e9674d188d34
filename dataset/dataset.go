package dataset

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/lvlwin/window"
)

// Field names attached by Window.
const (
	// FieldWindowStart holds the []int of window start indices.
	FieldWindowStart = "window_start"
	// FieldWindowStop holds the []int of window stop indices.
	FieldWindowStop = "window_stop"
)

// ErrFieldConflict indicates a merge collision on a field name whose
// values differ, with overwriting disabled.
var ErrFieldConflict = errors.New("dataset: conflicting values for field")

// Dataset is a named-array mapping. A nil Dataset behaves as empty.
type Dataset map[string]any

// Names returns the field names in sorted order, for deterministic
// iteration.
func (ds Dataset) Names() []string {
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Has reports whether the field is present.
func (ds Dataset) Has(name string) bool {
	_, ok := ds[name]

	return ok
}

// Merge combines base and additions into a new Dataset. Neither input
// is mutated, and non-conflicting fields are never dropped.
//
// On a name collision the winner is deterministic: with
// overwrite=true the addition wins; with overwrite=false equal values
// (reflect.DeepEqual) pass through and differing values fail with
// ErrFieldConflict, naming the field.
func Merge(base, additions Dataset, overwrite bool) (Dataset, error) {
	merged := make(Dataset, len(base)+len(additions))
	for name, arr := range base {
		merged[name] = arr
	}

	// Sorted order keeps the first reported conflict deterministic.
	for _, name := range additions.Names() {
		arr := additions[name]
		if existing, ok := merged[name]; ok && !overwrite {
			if !reflect.DeepEqual(existing, arr) {
				return nil, fmt.Errorf("%w: %q", ErrFieldConflict, name)
			}

			continue
		}
		merged[name] = arr
	}

	return merged, nil
}

// Window derives size/step window boundaries over [0, length) and
// attaches them to ds as FieldWindowStart / FieldWindowStop.
//
// With merge=true the result is ds merged with the two window fields
// (window fields overwrite stale ones from a previous call); with
// merge=false only the window fields are returned.
//
// Errors: window.ErrBadSize, window.ErrBadStep, window.ErrBadRange.
func Window(ds Dataset, length, size, step int, merge bool) (Dataset, error) {
	starts, stops, err := window.Bounds(0, length, size, step)
	if err != nil {
		return nil, err
	}

	windows := Dataset{
		FieldWindowStart: starts,
		FieldWindowStop:  stops,
	}
	if !merge {
		return windows, nil
	}

	return Merge(ds, windows, true)
}

// HasWindows reports whether ds carries windowing information.
func HasWindows(ds Dataset) bool {
	return ds.Has(FieldWindowStart) && ds.Has(FieldWindowStop)
}
