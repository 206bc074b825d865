package testutil

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	x := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}

	RequireSliceNearlyEqual(t, x, want, 1e-15)
}

func TestLinspaceSinglePoint(t *testing.T) {
	x := Linspace(3, 7, 1)
	if len(x) != 1 || x[0] != 3 {
		t.Fatalf("got %v, want [3]", x)
	}
}

func TestSinePeriod(t *testing.T) {
	ts := Linspace(0, 4, 401)
	y := Sine(ts, 1)

	// One full period later the value repeats.
	if math.Abs(y[0]-y[100]) > 1e-12 {
		t.Errorf("y(0) = %v, y(T) = %v", y[0], y[100])
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)

	RequireSliceNearlyEqual(t, a, b, 0)
}

func TestAR1Stationary(t *testing.T) {
	x := AR1(1, 0.9, 10000)
	RequireFinite(t, x)

	var sum float64
	for _, v := range x {
		sum += v
	}

	// Mean of a long stationary AR(1) series is near zero; the stationary
	// standard deviation is 1/sqrt(1-phi^2) ~ 2.3.
	if mean := sum / float64(len(x)); math.Abs(mean) > 0.5 {
		t.Errorf("mean = %v, want near 0", mean)
	}
}
