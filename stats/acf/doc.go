// Package acf computes the autocorrelation function of sampled time series.
//
// The series is correlated with itself across its whole length and only the
// non-negative lag half of the symmetric result is returned. Zero padding
// of the underlying linear correlation systematically underestimates large
// lags; by default each lag i is compensated by the factor N/(N-i).
//
// Normalization conventions:
//
//   - default: ACF[0] equals the variance of the series (its mean square
//     when mean removal is disabled)
//   - WithNormalize: the result is divided by its zero-lag value so that
//     ACF[0] is 1
//
// Degenerate inputs (all-zero or constant series) are handled with a
// fallback divisor of 1 rather than failing on division by zero.
package acf
