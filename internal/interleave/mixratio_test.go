package interleave

import (
	"math"
	"testing"

	"github.com/pacelab/pacer/internal/skills"
)

func TestOptimalMixRatio_SumsToOne(t *testing.T) {
	ratios := OptimalMixRatio(threeSkills(), skills.LearnerProfile{})
	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("ratios sum to %f, want 1", sum)
	}
}

func TestOptimalMixRatio_FavorsUnderMastered(t *testing.T) {
	ratios := OptimalMixRatio(threeSkills(), skills.LearnerProfile{})
	if ratios["fractions"] <= ratios["percents"] {
		t.Errorf("under-mastered skill should outweigh mastered: %f vs %f",
			ratios["fractions"], ratios["percents"])
	}
}

func TestOptimalMixRatio_MasteredSkillKeepsFloor(t *testing.T) {
	list := []skills.Skill{
		{ID: "done", PMastery: 1.0},
		{ID: "new", PMastery: 0.0},
	}
	ratios := OptimalMixRatio(list, skills.LearnerProfile{})

	// Weights are 0.3 and 1.3: the mastered skill keeps 0.3/1.6.
	want := 0.3 / 1.6
	if math.Abs(ratios["done"]-want) > 1e-9 {
		t.Errorf("mastered ratio = %f, want %f", ratios["done"], want)
	}
	if ratios["done"] == 0 {
		t.Error("fully mastered skill dropped from the mix")
	}
}

func TestOptimalMixRatio_EmptyList(t *testing.T) {
	ratios := OptimalMixRatio(nil, skills.LearnerProfile{})
	if len(ratios) != 0 {
		t.Errorf("expected empty map, got %v", ratios)
	}
}
