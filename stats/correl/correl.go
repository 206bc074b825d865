package correl

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-timeseries/stats/acf"
)

// Errors returned by the estimator.
var (
	ErrShapeMismatch = errors.New("correl: x and y must have the same length")
	ErrEmptySeries   = errors.New("correl: empty series")
)

// lowAccuracyThreshold is the subsampled count below which the ACF estimate
// is considered statistically unreliable.
const lowAccuracyThreshold = 500

// Warning is an advisory emitted when the subsampled series is too short
// for an accurate ACF. The computation proceeds regardless.
type Warning struct {
	Samples int // effective sample count after subsampling
	Stride  int // subsampling stride in use
}

func (w Warning) String() string {
	return fmt.Sprintf("correl: only %d datapoints for stride %d; ACF will possibly not be accurate", w.Samples, w.Stride)
}

// Result holds the correlation statistics of a time series.
type Result struct {
	// TC is the decay time constant of the ACF in units of the abscissa,
	// under the model that the normalized ACF decays as exp(-t/TC).
	TC float64

	// T0 is the abscissa value at the first root of the ACF.
	T0 float64

	// Sigma is the standard error estimate of the sample mean of y,
	// corrected for temporal correlation.
	Sigma float64

	// Time and ACF hold the truncated abscissa and unnormalized ACF used
	// for the integration. They are nil unless WithDiagnostics was given.
	Time []float64
	ACF  []float64
}

// CorrelationTime estimates the exponential decay time of the ACF of y's
// fluctuations around its mean, and the standard error of the mean of y
// corrected for that correlation.
//
// Both sequences are decimated by the configured stride (default 100)
// before the ACF is computed, which bounds the runtime on long series. The
// normalized ACF is assumed to decay exponentially; its integral from zero
// up to the first root equals the decay constant. The abscissa x must be
// increasing.
//
// The error estimate follows the standard correction for correlated
// samples: sigma = sqrt(2*TC*ACF[0] / (x[last]-x[first])).
func CorrelationTime(x, y []float64, opts ...Option) (Result, error) {
	cfg := applyOptions(opts...)

	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return Result{}, ErrEmptySeries
	}

	xs := subsample(x, cfg.stride)
	ys := subsample(y, cfg.stride)

	if len(ys) < lowAccuracyThreshold && cfg.sink != nil {
		cfg.sink(Warning{Samples: len(ys), Stride: cfg.stride})
	}

	acfVals, err := acf.Compute(ys)
	if err != nil {
		return Result{}, fmt.Errorf("correl: %w", err)
	}

	// First root of the ACF bounds the exponential-decay regime; a
	// monotonically positive ACF falls back to the last sample.
	i0 := len(acfVals) - 1
	for i, v := range acfVals {
		if v <= 0 {
			i0 = i
			break
		}
	}

	result := Result{T0: xs[i0]}

	norm := acfVals[0]
	if norm == 0 {
		// Guard against an all-zero ACF.
		norm = 1.0
	}

	normalized := make([]float64, i0)
	for i := range normalized {
		normalized[i] = acfVals[i] / norm
	}

	// Composite integration of the normalized ACF over the truncated
	// abscissa. Simpson's rule handles unevenly spaced samples; with too
	// few points for it, fall back to the trapezoid rule or zero.
	switch {
	case i0 >= 3:
		result.TC = integrate.Simpsons(xs[:i0], normalized)
	case i0 == 2:
		result.TC = integrate.Trapezoidal(xs[:i0], normalized)
	default:
		result.TC = 0
	}

	result.Sigma = math.Sqrt(2 * result.TC * acfVals[0] / (x[len(x)-1] - x[0]))

	if cfg.diagnostics {
		result.Time = append([]float64(nil), xs[:i0]...)
		result.ACF = append([]float64(nil), acfVals[:i0]...)
	}

	return result, nil
}

// subsample returns every stride-th element of s, starting with the first.
func subsample(s []float64, stride int) []float64 {
	out := make([]float64, 0, (len(s)+stride-1)/stride)
	for i := 0; i < len(s); i += stride {
		out = append(out, s[i])
	}
	return out
}
