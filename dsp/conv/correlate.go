package conv

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Cross-correlation is related to convolution: corr(a,b) = conv(a, reverse(b)).
// For real signals, this is equivalent to sliding b over a and computing the
// dot product.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Convolve(a, reversed(b))
}

// CorrelateDirect computes cross-correlation using direct time-domain
// computation regardless of input size.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Direct(a, reversed(b))
}

// CorrelateMode computes cross-correlation with the specified output mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// CorrelateModeDirect is CorrelateMode forced onto the direct time-domain
// path, useful as a reference for validating the FFT path.
func CorrelateModeDirect(a, b []float64, mode Mode) ([]float64, error) {
	full, err := CorrelateDirect(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate computes the full auto-correlation of signal a.
// The result has length 2*len(a) - 1 and is symmetric about its center;
// output index len(a)-1 corresponds to zero lag.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// reversed returns a time-reversed copy of b.
func reversed(b []float64) []float64 {
	out := make([]float64, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}
