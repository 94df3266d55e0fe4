package microbreak

import (
	"math"
	"testing"
)

func TestMeasureRecovery_TooFewSamples(t *testing.T) {
	r := MeasureRecovery([]int64{10000, 11000}, []int64{7000, 7500, 8000})
	if r.Score != 0.5 || r.Improvement != 0 {
		t.Errorf("got score=%f improvement=%f, want neutral 0.5/0", r.Score, r.Improvement)
	}
	if r.Recommendation != "Not enough data to measure recovery" {
		t.Errorf("recommendation = %q", r.Recommendation)
	}
}

func TestMeasureRecovery_ExcellentRecovery(t *testing.T) {
	r := MeasureRecovery(
		[]int64{10000, 12000, 11000},
		[]int64{7000, 7500, 8000},
	)

	// preAvg 11000, postAvg 7500: improvement (11000-7500)/11000.
	want := 3500.0 / 11000.0
	if math.Abs(r.Improvement-want) > 1e-9 {
		t.Errorf("improvement = %f, want %f", r.Improvement, want)
	}
	if r.Score != 1.0 {
		t.Errorf("score = %f, want 1.0", r.Score)
	}
}

func TestMeasureRecovery_Bands(t *testing.T) {
	tests := []struct {
		name string
		pre  []int64
		post []int64
		want float64
	}{
		{"good", []int64{10000, 10000, 10000}, []int64{8500, 8500, 8500}, 0.8},
		{"moderate", []int64{10000, 10000, 10000}, []int64{9500, 9500, 9500}, 0.6},
		{"minimal", []int64{10000, 10000, 10000}, []int64{10500, 10500, 10500}, 0.4},
		{"declining", []int64{10000, 10000, 10000}, []int64{12000, 12000, 12000}, 0.2},
	}

	for _, tt := range tests {
		r := MeasureRecovery(tt.pre, tt.post)
		if r.Score != tt.want {
			t.Errorf("%s: score = %f, want %f", tt.name, r.Score, tt.want)
		}
	}
}
