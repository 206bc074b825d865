// Package window provides the closed set of window shapes used for
// time-series smoothing.
//
// All windows use the symmetric convention: coefficients are evaluated at
// x = n/(N-1) for n in [0, N), so the first and last samples sit exactly on
// the window edges. This matches the sampled-window convention of common
// numerical libraries.
package window

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Type identifies a window shape.
type Type int

const (
	// TypeFlat is the rectangular window; smoothing with it is a plain
	// moving average.
	TypeFlat Type = iota
	TypeHanning
	TypeHamming
	TypeBartlett
	TypeBlackman
)

// Generalized cosine coefficients, w(x) = sum c_k * cos(k * 2*pi*x).
var (
	hanningCoeffs  = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

var typeNames = map[Type]string{
	TypeFlat:     "flat",
	TypeHanning:  "hanning",
	TypeHamming:  "hamming",
	TypeBartlett: "bartlett",
	TypeBlackman: "blackman",
}

// String returns the canonical lower-case name of the window type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a window name to its Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("window: unsupported window %q (must be one of flat, hanning, hamming, bartlett, blackman)", name)
}

// Generate returns window coefficients of the given length.
// A length of 1 yields the single coefficient 1; non-positive lengths
// yield nil.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}
	if length == 1 {
		return []float64{1}
	}

	out := make([]float64, length)
	for i := range out {
		x := float64(i) / float64(length-1)
		out[i] = eval(t, x)
	}

	return out
}

// Normalized returns a copy of w scaled so its coefficients sum to one,
// suitable as moving-average filter weights. A zero-sum window is returned
// unscaled.
func Normalized(w []float64) []float64 {
	out := make([]float64, len(w))

	sum := vecmath.Sum(w)
	if sum == 0 {
		copy(out, w)
		return out
	}

	vecmath.ScaleBlock(out, w, 1/sum)
	return out
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeFlat:
		return 1
	case TypeHanning:
		return cosineFromCoeffs(x, hanningCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
