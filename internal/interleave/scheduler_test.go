package interleave

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pacelab/pacer/internal/skills"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func threeSkills() []skills.Skill {
	return []skills.Skill{
		{ID: "fractions", Name: "Fractions", PMastery: 0.2},
		{ID: "decimals", Name: "Decimals", PMastery: 0.5},
		{ID: "percents", Name: "Percents", PMastery: 0.9},
	}
}

func TestGenerate_NoAdjacentRepeats(t *testing.T) {
	// With three skills and four questions each, a repeat is never
	// forced, so none should appear.
	for seed := range uint64(25) {
		rng := rand.New(rand.NewPCG(seed, 0))
		session := Generate(rng, threeSkills(), 4, 0)

		if len(session.Questions) != 12 {
			t.Fatalf("seed %d: got %d questions, want 12", seed, len(session.Questions))
		}
		for i := 1; i < len(session.Questions); i++ {
			if session.Questions[i].SkillID == session.Questions[i-1].SkillID {
				t.Errorf("seed %d: adjacent repeat of %q at position %d",
					seed, session.Questions[i].SkillID, i)
			}
		}
		if session.ForcedRepeats != 0 {
			t.Errorf("seed %d: ForcedRepeats = %d, want 0", seed, session.ForcedRepeats)
		}
	}
}

func TestGenerate_SingleSkillForcesRepeats(t *testing.T) {
	session := Generate(testRand(), []skills.Skill{{ID: "a", Name: "A"}}, 4, 0)

	if len(session.Questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(session.Questions))
	}
	if session.ForcedRepeats != 3 {
		t.Errorf("ForcedRepeats = %d, want 3", session.ForcedRepeats)
	}
	if session.EstimatedRetentionBoost != 0 {
		t.Errorf("boost = %f, want 0 with no switches", session.EstimatedRetentionBoost)
	}
}

func TestGenerate_EmptySkillList(t *testing.T) {
	session := Generate(testRand(), nil, 4, 0)
	if len(session.Questions) != 0 {
		t.Errorf("got %d questions, want 0", len(session.Questions))
	}
	if session.EstimatedRetentionBoost != 0 {
		t.Errorf("boost = %f, want 0", session.EstimatedRetentionBoost)
	}
}

func TestGenerate_TotalQuestionsHonored(t *testing.T) {
	session := Generate(testRand(), threeSkills(), 4, 7)
	if len(session.Questions) != 7 {
		t.Errorf("got %d questions, want 7", len(session.Questions))
	}
}

func TestGenerate_PositionsAndSwitchPoints(t *testing.T) {
	session := Generate(testRand(), threeSkills(), 2, 0)

	for i, q := range session.Questions {
		if q.Position != i {
			t.Errorf("question %d has Position %d", i, q.Position)
		}
		if i == 0 {
			if q.PreviousSkillID != "" || q.IsSwitchPoint {
				t.Error("first slot should have no predecessor and no switch")
			}
			continue
		}
		prev := session.Questions[i-1]
		if q.PreviousSkillID != prev.SkillID {
			t.Errorf("slot %d: PreviousSkillID = %q, want %q", i, q.PreviousSkillID, prev.SkillID)
		}
		if q.IsSwitchPoint != (q.SkillID != prev.SkillID) {
			t.Errorf("slot %d: IsSwitchPoint inconsistent", i)
		}
	}
}

func TestGenerate_MixRatioSumsToOne(t *testing.T) {
	session := Generate(testRand(), threeSkills(), 4, 0)
	sum := 0.0
	for _, frac := range session.SkillMixRatio {
		sum += frac
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("mix ratio sums to %f, want 1", sum)
	}
}

func TestGenerate_RetentionBoostFullyInterleaved(t *testing.T) {
	session := Generate(testRand(), threeSkills(), 4, 0)
	if session.ForcedRepeats != 0 {
		t.Fatalf("unexpected forced repeats: %d", session.ForcedRepeats)
	}
	// Every adjacent pair is a switch: boost is the full scale.
	if math.Abs(session.EstimatedRetentionBoost-RetentionBoostScale) > 1e-9 {
		t.Errorf("boost = %f, want %f", session.EstimatedRetentionBoost, RetentionBoostScale)
	}
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(7, 7)), threeSkills(), 4, 0)
	b := Generate(rand.New(rand.NewPCG(7, 7)), threeSkills(), 4, 0)

	for i := range a.Questions {
		if a.Questions[i].QuestionID != b.Questions[i].QuestionID {
			t.Fatalf("sequences diverge at %d: %q vs %q",
				i, a.Questions[i].QuestionID, b.Questions[i].QuestionID)
		}
	}
}
