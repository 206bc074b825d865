package acf

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-timeseries/dsp/conv"
)

// ErrEmptySeries is returned when the input series has no samples.
var ErrEmptySeries = errors.New("acf: empty series")

// Compute calculates the autocorrelation function of a one-dimensional
// series over non-negative lags. The result has at most len(series)
// samples, with index 0 representing zero lag.
//
// By default the sample mean is subtracted first, so the function describes
// the correlation of the fluctuations around the mean and the zero-lag
// value equals the variance of the series. The caller's slice is never
// mutated; de-meaning operates on a private copy.
//
// With the default full-mode convolution the estimate becomes increasingly
// inaccurate at large lags and is typically only meaningful up to about
// half the series length.
func Compute(series []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	n := len(series)
	if n == 0 {
		return nil, ErrEmptySeries
	}

	// Always work on a copy so the caller's data stays untouched.
	s := append([]float64(nil), series...)
	if cfg.RemoveMean {
		floats.AddConst(-stat.Mean(s, nil), s)
	}

	// Correlate the series with itself; the result is symmetric about
	// zero lag, so only the causal (non-negative lag) half is kept.
	var sym []float64
	var err error
	if cfg.Direct {
		sym, err = conv.CorrelateModeDirect(s, s, cfg.Mode)
	} else {
		sym, err = conv.CorrelateMode(s, s, cfg.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("acf: correlation failed: %w", err)
	}

	ac := sym[len(sym)/2:]
	if len(ac) > n {
		return nil, fmt.Errorf("acf: internal error: causal half has %d samples for input of %d", len(ac), n)
	}

	// Compensate for the zero padding of the linear correlation: lag i
	// sums only n-i products, so its expectation is low by (n-i)/n.
	// Valid mode performs no padding and needs no correction.
	if cfg.PaddingCorrection && cfg.Mode != conv.ModeValid {
		for i := range ac {
			ac[i] *= float64(n) / float64(n-i)
		}
	}

	norm := ac[0]
	if norm == 0 {
		// Guards against ACFs of all-zero series.
		norm = 1.0
	}

	if !cfg.Normalize {
		// Rescale so that lag 0 reproduces the variance (mean removed)
		// or the mean square (mean kept) of the series exactly,
		// independent of length and padding artifacts.
		meanSq := floats.Dot(s, s) / float64(n)
		if meanSq != 0 {
			norm /= meanSq
		} else {
			norm = 1.0
		}
	}

	for i := range ac {
		ac[i] /= norm
	}

	return ac, nil
}
