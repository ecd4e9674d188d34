package stats

import (
	"errors"

	mfstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for the reducer set.
var (
	// ErrEmptyWindow indicates a statistic undefined on an empty sample
	// was applied to a zero-length window.
	ErrEmptyWindow = errors.New("stats: statistic undefined on an empty window")

	// ErrBadQuantile indicates a quantile outside (0, 1].
	ErrBadQuantile = errors.New("stats: quantile must be in (0, 1]")

	// ErrRaggedRows indicates rows of differing lengths in a row-wise
	// reducer.
	ErrRaggedRows = errors.New("stats: all rows must have the same length")
)

// Sum returns the sum of the window's values; 0 for an empty window.
func Sum(win []float64) (float64, error) {
	return floats.Sum(win), nil
}

// Min returns the smallest value in the window.
func Min(win []float64) (float64, error) {
	if len(win) == 0 {
		return 0, ErrEmptyWindow
	}

	return floats.Min(win), nil
}

// Max returns the largest value in the window.
func Max(win []float64) (float64, error) {
	if len(win) == 0 {
		return 0, ErrEmptyWindow
	}

	return floats.Max(win), nil
}

// Mean returns the arithmetic mean of the window's values.
func Mean(win []float64) (float64, error) {
	if len(win) == 0 {
		return 0, ErrEmptyWindow
	}

	return stat.Mean(win, nil), nil
}

// Variance returns the unbiased sample variance of the window's
// values (NaN for a single element, per gonum semantics).
func Variance(win []float64) (float64, error) {
	if len(win) == 0 {
		return 0, ErrEmptyWindow
	}

	return stat.Variance(win, nil), nil
}

// StdDev returns the sample standard deviation of the window's values.
func StdDev(win []float64) (float64, error) {
	if len(win) == 0 {
		return 0, ErrEmptyWindow
	}

	return stat.StdDev(win, nil), nil
}

// Median returns the median of the window's values.
func Median(win []float64) (float64, error) {
	if len(win) == 0 {
		return 0, ErrEmptyWindow
	}

	return mfstats.Median(win)
}

// Quantile returns a reducer computing the q-th quantile, q in (0, 1].
// The parameter is closure-captured, so the engine forwards it to
// every window unchanged.
func Quantile(q float64) func(win []float64) (float64, error) {
	return func(win []float64) (float64, error) {
		if q <= 0 || q > 1 {
			return 0, ErrBadQuantile
		}
		if len(win) == 0 {
			return 0, ErrEmptyWindow
		}

		return mfstats.Percentile(win, q*100)
	}
}

// SumRows sums a window of equal-length rows elementwise, producing
// one row. The leading-axis counterpart of Sum.
func SumRows(win [][]float64) ([]float64, error) {
	if len(win) == 0 {
		return nil, ErrEmptyWindow
	}

	out := make([]float64, len(win[0]))
	for _, row := range win {
		if len(row) != len(out) {
			return nil, ErrRaggedRows
		}
		floats.Add(out, row)
	}

	return out, nil
}
