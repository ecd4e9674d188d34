// Package stats provides ready-made per-window reducers matching the
// winstat.Statistic signature: pure functions from a window's raw
// values to one aggregate.
//
// ✨ Included:
//
//   - Sum, Min, Max           — elementary aggregates (gonum/floats)
//   - Mean, Variance, StdDev  — moment statistics (gonum/stat)
//   - Median, Quantile(q)     — order statistics (montanaflynn/stats)
//   - SumRows                 — elementwise row sum for leading-axis data
//
// ⚙️ Usage:
//
//	res, err := winstat.MovingStatistic(arr, stats.Mean, 100, 100)
//	p90, err := winstat.MovingStatistic(arr, stats.Quantile(0.9), 100, 100)
//
// Quantile demonstrates per-statistic configuration: the parameter is
// captured in the returned closure, so the engine forwards it to every
// window untouched.
//
// Policy on empty windows: Sum returns 0; every statistic that is
// undefined on an empty sample (Mean, Min, Median, …) returns
// ErrEmptyWindow instead of guessing. Variance follows gonum's sample
// (Bessel-corrected) semantics and is NaN for a single element.
package stats
