package telemetry

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %f, want 0", got)
	}
	if got := Mean([]int64{10000, 12000, 11000}); got != 11000 {
		t.Errorf("Mean = %f, want 11000", got)
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	// Identical samples have zero spread.
	if got := CoefficientOfVariation([]int64{5000, 5000, 5000}); got != 0 {
		t.Errorf("CV of constant samples = %f, want 0", got)
	}

	// 1000 and 3000: mean 2000, stddev 1000, CV 0.5.
	got := CoefficientOfVariation([]int64{1000, 3000})
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("CV = %f, want 0.5", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(nil); got != 0 {
		t.Errorf("Accuracy(nil) = %f, want 0", got)
	}
	if got := Accuracy([]bool{true, true, false, false}); got != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", got)
	}
}

func TestLastNAndPriorN(t *testing.T) {
	samples := []int64{1, 2, 3, 4, 5, 6, 7}

	last := LastN(samples, 5)
	if len(last) != 5 || last[0] != 3 {
		t.Errorf("LastN = %v, want [3 4 5 6 7]", last)
	}

	// Only two samples precede the trailing five.
	prior := PriorN(samples, 5)
	if len(prior) != 2 || prior[0] != 1 || prior[1] != 2 {
		t.Errorf("PriorN = %v, want [1 2]", prior)
	}

	if prior := PriorN(samples[:5], 5); prior != nil {
		t.Errorf("PriorN with no preceding samples = %v, want nil", prior)
	}
}
