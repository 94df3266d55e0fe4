package retrieval

import (
	"strings"
	"testing"
	"time"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDecide_InitialLearningPhase(t *testing.T) {
	d := Decide(0.3, now.AddDate(0, 0, -5), 1, now)
	if d.UseRetrieval {
		t.Error("should not retrieve during initial learning")
	}
	if !strings.Contains(d.Reason, "initial learning phase") {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestDecide_NeverTested(t *testing.T) {
	d := Decide(0.6, time.Time{}, 4, now)
	if !d.UseRetrieval {
		t.Error("first retrieval test should be recommended")
	}
	if !strings.Contains(d.Reason, "not yet attempted") {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestDecide_OptimalMasteryRange(t *testing.T) {
	d := Decide(0.6, now.AddDate(0, 0, -2), 4, now)
	if !d.UseRetrieval {
		t.Error("expected retrieval in optimal range with enough spacing")
	}
	if !strings.Contains(d.Reason, "optimal mastery range") {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestDecide_OptimalRangeButTooSoon(t *testing.T) {
	// Tested twelve hours ago: falls through to the default rule.
	d := Decide(0.6, now.Add(-12*time.Hour), 4, now)
	if !d.UseRetrieval {
		t.Error("default rule should still retrieve")
	}
	if !strings.Contains(d.Reason, "regular retrieval") {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestDecide_HighMasterySpacing(t *testing.T) {
	d := Decide(0.9, now.AddDate(0, 0, -1), 4, now)
	if d.UseRetrieval {
		t.Error("well-mastered skill tested yesterday should wait")
	}
	if !strings.Contains(d.Reason, "spacing") {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestDecide_HighMasteryAfterSpacing(t *testing.T) {
	d := Decide(0.9, now.AddDate(0, 0, -4), 4, now)
	if !d.UseRetrieval {
		t.Error("spacing satisfied, retrieval should resume")
	}
}
