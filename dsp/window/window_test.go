package window

import (
	"math"
	"testing"
)

func TestGenerateFlat(t *testing.T) {
	w := Generate(TypeFlat, 5)
	if len(w) != 5 {
		t.Fatalf("length = %d, want 5", len(w))
	}

	for i, v := range w {
		if v != 1 {
			t.Errorf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestGenerateEdgesAndCenter(t *testing.T) {
	tests := []struct {
		name   string
		typ    Type
		edge   float64 // value at both ends
		center float64 // value at the middle of an odd-length window
	}{
		{"hanning", TypeHanning, 0, 1},
		{"hamming", TypeHamming, 0.08, 1},
		{"bartlett", TypeBartlett, 0, 1},
		{"blackman", TypeBlackman, 0, 1},
	}

	const n = 11

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Generate(tt.typ, n)
			if len(w) != n {
				t.Fatalf("length = %d, want %d", len(w), n)
			}

			if math.Abs(w[0]-tt.edge) > 1e-12 || math.Abs(w[n-1]-tt.edge) > 1e-12 {
				t.Errorf("edges = %v, %v, want %v", w[0], w[n-1], tt.edge)
			}

			if math.Abs(w[n/2]-tt.center) > 1e-12 {
				t.Errorf("center = %v, want %v", w[n/2], tt.center)
			}

			// Symmetric about the center.
			for i := 0; i < n/2; i++ {
				if math.Abs(w[i]-w[n-1-i]) > 1e-12 {
					t.Errorf("asymmetric at %d: %v vs %v", i, w[i], w[n-1-i])
				}
			}
		})
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if w := Generate(TypeHanning, 0); w != nil {
		t.Errorf("length 0: got %v, want nil", w)
	}

	w := Generate(TypeHanning, 1)
	if len(w) != 1 || w[0] != 1 {
		t.Errorf("length 1: got %v, want [1]", w)
	}
}

func TestNormalized(t *testing.T) {
	w := Generate(TypeHamming, 9)
	nw := Normalized(w)

	var sum float64
	for _, v := range nw {
		sum += v
	}

	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("sum = %v, want 1", sum)
	}

	// Input must not be mutated.
	if math.Abs(w[0]-0.08) > 1e-12 {
		t.Errorf("input mutated: w[0] = %v", w[0])
	}
}

func TestNormalizedZeroSum(t *testing.T) {
	w := []float64{1, -1}
	nw := Normalized(w)

	if nw[0] != 1 || nw[1] != -1 {
		t.Errorf("zero-sum window changed: %v", nw)
	}
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"flat", "hanning", "hamming", "bartlett", "blackman"} {
		typ, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}

		if typ.String() != name {
			t.Errorf("round trip: %q -> %v", name, typ)
		}
	}

	if _, err := ParseType("kaiser"); err == nil {
		t.Error("expected error for unsupported window name")
	}
}
