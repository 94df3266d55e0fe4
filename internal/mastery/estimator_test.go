package mastery

import (
	"math"
	"testing"
)

func TestSpeedScore(t *testing.T) {
	tests := []struct {
		name     string
		timeMs   int64
		targetMs int64
		want     float64
	}{
		{"well under target", 2000, 6000, 1.0},
		{"exactly half", 3000, 6000, 1.0},
		{"at target", 6000, 6000, 0.5},
		{"between half and target", 4500, 6000, 0.75},
		{"fifty percent over", 9000, 6000, 0.25},
		{"double target", 12000, 6000, 0.0},
		{"way over", 30000, 6000, 0.0},
		{"zero target is neutral", 4000, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpeedScore(tt.timeMs, tt.targetMs)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SpeedScore(%d, %d) = %v, want %v", tt.timeMs, tt.targetMs, got, tt.want)
			}
		})
	}
}

func TestConsistencyScore(t *testing.T) {
	if got := ConsistencyScore(0, StreakCap); got != 0.0 {
		t.Errorf("zero streak = %v, want 0", got)
	}
	if got := ConsistencyScore(4, 8); got != 0.5 {
		t.Errorf("half streak = %v, want 0.5", got)
	}
	if got := ConsistencyScore(20, 8); got != 1.0 {
		t.Errorf("streak past cap = %v, want 1", got)
	}
	if got := ConsistencyScore(3, 0); got != 0.0 {
		t.Errorf("zero cap = %v, want 0", got)
	}
}

func TestTrackerAccuracy(t *testing.T) {
	tr := NewTracker()
	if got := tr.Accuracy(); got != 0.0 {
		t.Errorf("empty tracker accuracy = %v, want 0", got)
	}

	tr.Observe(true, 3000, 6000)
	tr.Observe(true, 3000, 6000)
	tr.Observe(false, 9000, 6000)
	tr.Observe(true, 3000, 6000)

	if got := tr.Accuracy(); got != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}
	if got := tr.Attempts(); got != 4 {
		t.Errorf("attempts = %d, want 4", got)
	}
}

func TestTrackerStreakResetsOnWrong(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.Observe(true, 3000, 6000)
	}
	before := tr.Fluency()

	tr.Observe(false, 3000, 6000)
	after := tr.Fluency()

	if after >= before {
		t.Errorf("fluency after wrong answer = %v, want below %v", after, before)
	}
}

func TestTrackerFluencyBounds(t *testing.T) {
	fast := NewTracker()
	for i := 0; i < 10; i++ {
		fast.Observe(true, 2000, 6000)
	}
	if got := fast.Fluency(); got != 1.0 {
		t.Errorf("perfect run fluency = %v, want 1.0", got)
	}

	slow := NewTracker()
	for i := 0; i < 10; i++ {
		slow.Observe(false, 20000, 6000)
	}
	if got := slow.Fluency(); got != 0.0 {
		t.Errorf("failing run fluency = %v, want 0.0", got)
	}
}

func TestEstimateMovesTowardObservedFluency(t *testing.T) {
	tr := NewTracker()
	if got := tr.Estimate(0.4); got != 0.4 {
		t.Errorf("empty tracker estimate = %v, want prior 0.4", got)
	}

	for i := 0; i < 5; i++ {
		tr.Observe(true, 2500, 6000)
	}

	got := tr.Estimate(0.4)
	if got <= 0.4 {
		t.Errorf("estimate after strong run = %v, want above prior 0.4", got)
	}
	if got >= tr.Fluency() {
		t.Errorf("estimate = %v, want below observed fluency %v", got, tr.Fluency())
	}
}

func TestEstimateDropsOnPoorRun(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 8; i++ {
		tr.Observe(false, 15000, 6000)
	}

	if got := tr.Estimate(0.8); got >= 0.8 {
		t.Errorf("estimate after failing run = %v, want below prior 0.8", got)
	}
}
