// Package conv provides linear convolution and correlation routines.
//
// Two strategies are offered:
//
//   - Direct convolution: simple O(N*M) time-domain convolution, best for
//     very short kernels
//   - FFT convolution: zero-padded frequency-domain convolution, efficient
//     once the shorter input exceeds a few dozen samples
//
// All results follow the full/same/valid output-mode convention used by
// common numerical libraries (see Mode).
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)  // Auto-selects best algorithm
//	result, err := conv.Direct(signal, kernel)    // Force direct convolution
//	result, err := conv.Correlate(a, b)           // Cross-correlation
//
// Output modes trim the full result:
//
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
package conv
