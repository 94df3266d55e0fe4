package variation

import (
	"math/rand/v2"
	"testing"

	"github.com/pacelab/pacer/internal/skills"
)

func TestSelectType_ExcludesRecentTypes(t *testing.T) {
	skill := skills.Skill{ID: "s1", BloomLevel: skills.BloomApply}
	previous := []Type{TypeContext, TypeFormat, TypeNumerical}

	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, 0))
		got := SelectType(rng, skill, previous)
		if got != TypePhrasing {
			t.Fatalf("seed %d: got %v, want phrasing (only non-recent type)", seed, got)
		}
	}
}

func TestSelectType_RepeatedRecentTypesStillExcluded(t *testing.T) {
	skill := skills.Skill{ID: "s1"}
	// The same three types repeated must not widen the candidate set.
	previous := []Type{
		TypeContext, TypeFormat, TypeNumerical,
		TypeContext, TypeFormat, TypeNumerical,
	}

	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, 0))
		if got := SelectType(rng, skill, previous); got != TypePhrasing {
			t.Fatalf("seed %d: got %v, want phrasing", seed, got)
		}
	}
}

func TestSelectType_AllTypesRecentAllowsAll(t *testing.T) {
	skill := skills.Skill{ID: "s1"}
	// Last three are format/numerical/phrasing; context is available
	// again despite appearing earlier.
	previous := []Type{TypeContext, TypeFormat, TypeNumerical, TypePhrasing}

	seen := map[Type]bool{}
	for seed := range uint64(200) {
		rng := rand.New(rand.NewPCG(seed, 0))
		seen[SelectType(rng, skill, previous)] = true
	}
	if !seen[TypeContext] {
		t.Error("context never selected despite falling out of the window")
	}
	if seen[TypeFormat] || seen[TypeNumerical] || seen[TypePhrasing] {
		t.Errorf("recent types selected: %v", seen)
	}
}

func TestSelectType_NoHistoryDrawsFromAll(t *testing.T) {
	skill := skills.Skill{ID: "s1", BloomLevel: skills.BloomAnalyze, Difficulty: 0.8, PMastery: 0.9}

	seen := map[Type]bool{}
	for seed := range uint64(300) {
		rng := rand.New(rand.NewPCG(seed, 0))
		seen[SelectType(rng, skill, nil)] = true
	}
	for _, want := range AllTypes() {
		if !seen[want] {
			t.Errorf("type %v never drawn over 300 seeds", want)
		}
	}
}

func TestSelectType_Deterministic(t *testing.T) {
	skill := skills.Skill{ID: "s1", Difficulty: 0.6}
	a := SelectType(rand.New(rand.NewPCG(9, 9)), skill, nil)
	b := SelectType(rand.New(rand.NewPCG(9, 9)), skill, nil)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestWeightFor(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		skill skills.Skill
		want  float64
	}{
		{"context high-order", TypeContext, skills.Skill{BloomLevel: skills.BloomApply}, 2.0},
		{"context low-order", TypeContext, skills.Skill{BloomLevel: skills.BloomRemember}, 1.0},
		{"format always base", TypeFormat, skills.Skill{BloomLevel: skills.BloomCreate, Difficulty: 1}, 1.0},
		{"numerical hard", TypeNumerical, skills.Skill{Difficulty: 0.6}, 1.5},
		{"numerical easy", TypeNumerical, skills.Skill{Difficulty: 0.5}, 1.0},
		{"phrasing mastered", TypePhrasing, skills.Skill{PMastery: 0.8}, 1.5},
		{"phrasing learning", TypePhrasing, skills.Skill{PMastery: 0.7}, 1.0},
	}

	for _, tt := range tests {
		if got := weightFor(tt.typ, tt.skill); got != tt.want {
			t.Errorf("%s: weight = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestBuildPrompt_MentionsSkill(t *testing.T) {
	skill := skills.Skill{ID: "s1", Name: "Equivalent Fractions"}
	for _, typ := range AllTypes() {
		p := BuildPrompt(skill, typ)
		if p.Type != typ {
			t.Errorf("prompt type = %v, want %v", p.Type, typ)
		}
		if p.Instruction == "" {
			t.Errorf("empty instruction for %v", typ)
		}
	}
}
