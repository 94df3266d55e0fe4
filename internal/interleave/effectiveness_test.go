package interleave

import (
	"math"
	"testing"
)

func TestTrackEffectiveness_WorkingWell(t *testing.T) {
	e := TrackEffectiveness(0.5, 0.7, 10)

	// improvement 0.2, time adjustment ×1.5.
	if math.Abs(e.Improvement-0.2) > 1e-9 {
		t.Errorf("improvement = %f, want 0.2", e.Improvement)
	}
	if math.Abs(e.TimeAdjusted-0.3) > 1e-9 {
		t.Errorf("timeAdjusted = %f, want 0.3", e.TimeAdjusted)
	}
	if e.Verdict != VerdictWorkingWell {
		t.Errorf("verdict = %q, want working_well", e.Verdict)
	}
}

func TestTrackEffectiveness_SlightImprovement(t *testing.T) {
	e := TrackEffectiveness(0.5, 0.55, 0)
	if e.Verdict != VerdictSlightImprovement {
		t.Errorf("verdict = %q, want slight_improvement", e.Verdict)
	}
}

func TestTrackEffectiveness_NeedsAdjustment(t *testing.T) {
	e := TrackEffectiveness(0.6, 0.55, 5)
	if e.Verdict != VerdictNeedsAdjustment {
		t.Errorf("verdict = %q, want needs_adjustment", e.Verdict)
	}
	if e.TimeAdjusted >= 0 {
		t.Errorf("timeAdjusted = %f, want negative", e.TimeAdjusted)
	}
}

func TestTrackEffectiveness_DelayAmplifiesCredit(t *testing.T) {
	short := TrackEffectiveness(0.5, 0.58, 0)
	long := TrackEffectiveness(0.5, 0.58, 30)

	// 0.08 raw: immediate measurement is only a slight improvement,
	// but the same gain held for a month clears the working-well bar.
	if short.Verdict != VerdictSlightImprovement {
		t.Errorf("short verdict = %q", short.Verdict)
	}
	if long.Verdict != VerdictWorkingWell {
		t.Errorf("long verdict = %q", long.Verdict)
	}
}
