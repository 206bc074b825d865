package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-timeseries/dsp/conv"
	"github.com/cwbudde/algo-timeseries/dsp/window"
)

// Errors returned by smoothing functions.
var (
	ErrEmptyInput        = errors.New("smooth: empty input")
	ErrWindowTooLong     = errors.New("smooth: input must be at least as long as the window")
	ErrEvenWindow        = errors.New("smooth: window length must be odd")
	ErrShortAbscissa     = errors.New("smooth: need at least two abscissa points")
	ErrInvalidResolution = errors.New("smooth: resolution must be positive")
)

// Smooth filters x with a normalized window of the given shape and length,
// returning a smoothed sequence of the same length as x.
//
// The signal is extended at both ends with reflected copies of itself so
// that transients at the edges are minimized, then convolved with the
// unit-sum window, and trimmed back to the original length.
//
// The window length must be odd; a length below 3 returns a copy of x
// unchanged. x must be at least as long as the window.
func Smooth(x []float64, windowLen int, t window.Type) ([]float64, error) {
	if err := validate(len(x), windowLen); err != nil {
		return nil, err
	}
	if windowLen < 3 {
		return append([]float64(nil), x...), nil
	}

	return filter(x, window.Generate(t, windowLen))
}

// SmoothWeights filters x with caller-supplied window weights. The weights
// are normalized to unit sum internally and must have odd length.
func SmoothWeights(x, weights []float64) ([]float64, error) {
	if err := validate(len(x), len(weights)); err != nil {
		return nil, err
	}
	if len(weights) < 3 {
		return append([]float64(nil), x...), nil
	}

	return filter(x, weights)
}

// filter runs the reflect-pad / convolve / trim pipeline with raw weights.
func filter(x, weights []float64) ([]float64, error) {
	windowLen := len(weights)

	padded := reflectPad(x, windowLen)

	out, err := conv.ConvolveMode(padded, window.Normalized(weights), conv.ModeValid)
	if err != nil {
		return nil, fmt.Errorf("smooth: convolution failed: %w", err)
	}

	// The valid-mode output has len(x) + windowLen - 1 samples; trimming
	// half a window from each end restores the input length.
	half := (windowLen - 1) / 2
	return out[half : len(out)-half], nil
}

func validate(inputLen, windowLen int) error {
	if inputLen == 0 {
		return ErrEmptyInput
	}
	if inputLen < windowLen {
		return fmt.Errorf("%w: input %d, window %d", ErrWindowTooLong, inputLen, windowLen)
	}
	if windowLen%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenWindow, windowLen)
	}
	return nil
}

// reflectPad extends x by windowLen-1 samples on each side: the leading pad
// mirrors the samples after x[0], the trailing pad mirrors backwards from
// the final sample.
func reflectPad(x []float64, windowLen int) []float64 {
	n := len(x)
	pad := windowLen - 1

	out := make([]float64, 0, n+2*pad)
	for i := pad; i >= 1; i-- {
		out = append(out, x[i])
	}
	out = append(out, x...)
	for i := n - 1; i >= n-pad; i-- {
		out = append(out, x[i])
	}

	return out
}

// WindowLength converts a smoothing resolution in abscissa units into an odd
// window length in samples, using the mean sample spacing of t. The result
// is truncated to an integer and bumped to the next odd value when even.
func WindowLength(resolution float64, t []float64) (int, error) {
	if resolution <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidResolution, resolution)
	}
	if len(t) < 2 {
		return 0, ErrShortAbscissa
	}

	var sum float64
	for i := 1; i < len(t); i++ {
		sum += t[i] - t[i-1]
	}

	dt := sum / float64(len(t)-1)
	if dt <= 0 {
		return 0, fmt.Errorf("smooth: abscissa must be increasing on average, mean spacing %g", dt)
	}

	n := int(resolution / dt)
	if n%2 == 0 {
		n++
	}

	return n, nil
}
