// Package smooth provides windowed smoothing of noisy one-dimensional
// signals for visualization and trend extraction.
//
// The filter convolves the signal with a normalized window (see
// dsp/window) after extending both ends with reflected copies of the
// signal, which suppresses the edge transients a plain zero-padded
// moving average would produce. The output always has the same length
// as the input.
//
// WindowLength converts a physical smoothing resolution into a suitable
// odd window length given the sample spacing of the abscissa.
package smooth
