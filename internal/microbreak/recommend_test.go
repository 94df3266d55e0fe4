package microbreak

import (
	"testing"
	"time"

	"github.com/pacelab/pacer/internal/telemetry"
)

var sessionStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRecommend_WithinFocusWindow(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	rec := Recommend(s, DefaultConfig(), sessionStart.Add(4*time.Minute))

	if rec.ShouldBreak {
		t.Error("should not break inside minimum focus window")
	}
	if rec.Urgency != UrgencyNone {
		t.Errorf("urgency = %v, want none", rec.Urgency)
	}
	if rec.NextCheck != 6*time.Minute {
		t.Errorf("NextCheck = %v, want remaining 6m", rec.NextCheck)
	}
}

func TestRecommend_StronglyRecommendedOnMaxDuration(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	rec := Recommend(s, DefaultConfig(), sessionStart.Add(16*time.Minute))

	if !rec.ShouldBreak {
		t.Error("expected a break past max session duration")
	}
	if rec.Urgency != UrgencyStronglyRecommended {
		t.Errorf("urgency = %v, want strongly_recommended", rec.Urgency)
	}
}

func TestRecommend_StronglyRecommendedOnHighFatigue(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	// Erratic and slowing answers push fatigue past 0.7 once combined
	// with the elapsed-time signal.
	times := []int64{2000, 2000, 2000, 2000, 2000, 9000, 1000, 9500, 1000, 9000}
	for _, ms := range times {
		s = s.RecordAnswer(ms, true)
	}
	rec := Recommend(s, DefaultConfig(), sessionStart.Add(11*time.Minute))

	if rec.Urgency != UrgencyStronglyRecommended {
		t.Errorf("urgency = %v (fatigue %f), want strongly_recommended",
			rec.Urgency, rec.FatigueLevel)
	}
}

func TestRecommend_RecommendedFloorPastMinDuration(t *testing.T) {
	// Past the minimum window with no fatigue signals beyond the
	// elapsed-time bracket, the floor is "recommended".
	s := telemetry.NewSessionState(sessionStart)
	rec := Recommend(s, DefaultConfig(), sessionStart.Add(12*time.Minute))

	if rec.Urgency != UrgencyRecommended {
		t.Errorf("urgency = %v, want recommended", rec.Urgency)
	}
	if rec.Reason != "Approaching recommended break time" {
		t.Errorf("reason = %q", rec.Reason)
	}
}

func TestRecommend_UrgencyOrdering(t *testing.T) {
	if !(UrgencyNone < UrgencySuggested &&
		UrgencySuggested < UrgencyRecommended &&
		UrgencyRecommended < UrgencyStronglyRecommended) {
		t.Error("urgency levels out of order")
	}
}

func TestRecommend_NextCheckIntervals(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	rec := Recommend(s, DefaultConfig(), sessionStart.Add(12*time.Minute))
	if rec.NextCheck != ActiveCheckInterval {
		t.Errorf("NextCheck = %v, want %v", rec.NextCheck, ActiveCheckInterval)
	}
}

func TestSelectBreakType_HighCognitiveLoad(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart).WithCognitiveLoad(0.8)
	now := sessionStart.Add(12 * time.Minute)

	cfg := DefaultConfig()
	if got := selectBreakType(s, cfg, now); got != BreakBreathing {
		t.Errorf("break type = %v, want breathing", got)
	}

	cfg.EnableBreathing = false
	if got := selectBreakType(s, cfg, now); got != BreakMindfulness {
		t.Errorf("break type = %v, want mindfulness fallback", got)
	}

	cfg.AdaptToCognitiveLoad = false
	cfg.EnableBreathing = true
	if got := selectBreakType(s, cfg, now); got == BreakMindfulness {
		t.Error("load rule should not fire when adaptation is disabled")
	}
}

func TestSelectBreakType_LongSessionPrefersMovement(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	got := selectBreakType(s, DefaultConfig(), sessionStart.Add(25*time.Minute))
	if got != BreakMovement {
		t.Errorf("break type = %v, want movement", got)
	}
}

func TestSelectBreakType_FullWindowPrefersGazeShift(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	for range telemetry.WindowCap {
		s = s.RecordAnswer(3000, true)
	}
	got := selectBreakType(s, DefaultConfig(), sessionStart.Add(12*time.Minute))
	if got != BreakGazeShift {
		t.Errorf("break type = %v, want gaze_shift", got)
	}
}

func TestSelectBreakType_RotatesForVariety(t *testing.T) {
	now := sessionStart.Add(12 * time.Minute)
	cfg := DefaultConfig()

	s := telemetry.NewSessionState(sessionStart)
	first := selectBreakType(s, cfg, now)

	s.BreaksTaken = 1
	second := selectBreakType(s, cfg, now)

	if first == second {
		t.Errorf("rotation stuck on %v", first)
	}
}

func TestSelectBreakType_AllDisabledFallsBackToBreathing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableBreathing = false
	cfg.EnableMovement = false
	cfg.EnableMindfulness = false
	cfg.EnableGazeShift = false

	s := telemetry.NewSessionState(sessionStart)
	got := selectBreakType(s, cfg, sessionStart.Add(12*time.Minute))
	if got != BreakBreathing {
		t.Errorf("break type = %v, want breathing fallback", got)
	}
}

func TestScaledDuration_CapsAtMax(t *testing.T) {
	cfg := DefaultConfig()

	if got := scaledDuration(cfg, 0); got != cfg.BreakDuration {
		t.Errorf("duration at zero fatigue = %v, want base %v", got, cfg.BreakDuration)
	}

	cfg.BreakDuration = 110 * time.Second
	if got := scaledDuration(cfg, 1.0); got != MaxBreakDuration {
		t.Errorf("duration = %v, want cap %v", got, MaxBreakDuration)
	}
}
