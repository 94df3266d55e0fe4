package retrieval

import (
	"math"
	"testing"
)

func TestStrength(t *testing.T) {
	tests := []struct {
		name       string
		timeMs     int64
		correct    bool
		confidence int
		hints      int
		want       float64
	}{
		{"fast confident unaided", 8000, true, 5, 0, 0.9},
		{"fast some confidence", 8000, true, 3, 0, 0.8},
		{"moderate speed high confidence", 20000, true, 4, 0, 0.85},
		{"slow correct low confidence", 40000, true, 1, 0, 0.6},
		{"correct with two hints", 8000, true, 5, 2, 0.7},
		{"incorrect", 8000, false, 5, 0, 0.2},
		{"incorrect with hints", 8000, false, 1, 3, 0.0},
	}

	for _, tt := range tests {
		got := Strength(tt.timeMs, tt.correct, tt.confidence, tt.hints)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: strength = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestStrength_ClampedToUnitInterval(t *testing.T) {
	if got := Strength(8000, false, 1, 10); got != 0 {
		t.Errorf("over-hinted strength = %f, want 0", got)
	}
	if got := Strength(1000, true, 5, 0); got > 1 {
		t.Errorf("strength = %f, want <= 1", got)
	}
}
