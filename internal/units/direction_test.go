package units

import (
	"math"
	"testing"
)

func TestDirection_Compass(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.26, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "NNW"},
		{354, "N"}, // wraps back to north
		{360, "N"},
		{450, "E"},  // normalized
		{-90, "W"},  // negative degrees normalize
		{-45, "NW"},
	}

	for _, tt := range tests {
		if got := FromDegrees(tt.deg).Compass(); got != tt.want {
			t.Errorf("Compass(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestDirection_CompassCoversAllLabels(t *testing.T) {
	seen := make(map[string]bool)
	for deg := 0.0; deg < 360.0; deg += 22.5 {
		seen[FromDegrees(deg).Compass()] = true
	}
	if len(seen) != 16 {
		t.Errorf("sampled %d distinct labels, want 16", len(seen))
	}
	if seen[CompassUnknown] {
		t.Error("unknown label appeared for a valid degree")
	}
}

func TestDirection_NonFinite(t *testing.T) {
	for _, deg := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FromDegrees(deg).Compass(); got != CompassUnknown {
			t.Errorf("Compass(%v) = %q, want %q", deg, got, CompassUnknown)
		}
	}
}

func TestDirection_DegreesNormalized(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{720.5, 0.5},
		{-10, 350},
	}
	for _, tt := range tests {
		if got := FromDegrees(tt.in).Degrees(); math.Abs(got-tt.want) > tol {
			t.Errorf("Degrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
