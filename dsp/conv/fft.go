package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFTConvolve performs one-shot linear convolution in the frequency domain.
// Both inputs are zero-padded to the next power of two >= len(a)+len(b)-1,
// transformed, multiplied, and transformed back. The result has length
// len(a) + len(b) - 1.
//
// This is the method of choice once the shorter input exceeds a few dozen
// samples; for very short kernels Direct is faster.
func FFTConvolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	// Zero-pad inputs to the FFT size.
	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	// Pointwise product in the frequency domain is convolution in time.
	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		resultFreq[i] = aFreq[i] * bFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// The padding guarantees the circular convolution equals the linear one
	// over the first n+m-1 samples.
	result := make([]float64, n+m-1)
	for i := range result {
		result[i] = real(resultTime[i])
	}

	return result, nil
}
