package app

import (
	"context"
	"testing"
	"time"
)

func TestBuildStatsEmptyStore(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}

	skillSet := DemoSkills(time.Now())
	report, err := BuildStats(context.Background(), events, skillSet)
	if err != nil {
		t.Fatalf("build stats: %v", err)
	}

	if len(report.Skills) != len(skillSet) {
		t.Fatalf("skill reports = %d, want %d", len(report.Skills), len(skillSet))
	}
	for i, sr := range report.Skills {
		if sr.Stats.Attempts != 0 {
			t.Errorf("%s: attempts = %d, want 0", sr.Skill.ID, sr.Stats.Attempts)
		}
		if sr.Effectiveness != nil {
			t.Errorf("%s: effectiveness reported with no history", sr.Skill.ID)
		}
		if sr.EstimatedMastery != skillSet[i].PMastery {
			t.Errorf("%s: estimate = %v with no history, want prior %v",
				sr.Skill.ID, sr.EstimatedMastery, skillSet[i].PMastery)
		}
	}
}

func TestBuildStatsAfterSession(t *testing.T) {
	s := openTestStore(t)
	r := testRunner(t, s, nil, 4)
	ctx := context.Background()

	if _, err := r.Simulate(ctx); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	report, err := BuildStats(ctx, events, DemoSkills(time.Now()))
	if err != nil {
		t.Fatalf("build stats: %v", err)
	}

	total := 0
	for _, sr := range report.Skills {
		total += sr.Stats.Attempts
		if sr.Stats.Attempts > 0 {
			if sr.EstimatedMastery <= 0 || sr.EstimatedMastery > 1 {
				t.Errorf("%s: estimate %v out of range", sr.Skill.ID, sr.EstimatedMastery)
			}
			if sr.Stats.Accuracy < 0 || sr.Stats.Accuracy > 1 {
				t.Errorf("%s: accuracy %v out of range", sr.Skill.ID, sr.Stats.Accuracy)
			}
		}
	}
	if total == 0 {
		t.Fatal("no attempts recorded across skills")
	}

	rendered := report.Render()
	if rendered == "" {
		t.Fatal("empty render")
	}
}
