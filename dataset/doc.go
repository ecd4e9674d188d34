// Package dataset provides a minimal named-array mapping — the
// container windowed results and their metadata travel in — with a
// deterministic merge and a front end that attaches window boundaries
// as regular fields.
//
// 🚀 Shape of a dataset
//
//	A Dataset maps field names to arrays (any slice type). Derived
//	fields are merged back next to the originals, so downstream steps
//	can look everything up by name:
//
//	  ds2, err := dataset.Window(ds, length, size, step, true)
//	  starts := ds2[dataset.FieldWindowStart].([]int)
//
// ✨ Merge semantics:
//
//   - non-conflicting fields are never dropped
//   - on a key conflict, the winner is chosen deterministically:
//     overwrite=true → the addition wins; overwrite=false → equal
//     values pass, differing values fail with ErrFieldConflict
//
// Window derives size/step boundaries over [0, length) and attaches
// them as FieldWindowStart / FieldWindowStop; with merge=false it
// returns only the two window fields (for callers assembling their
// own container). HasWindows reports whether both fields are present.
package dataset
