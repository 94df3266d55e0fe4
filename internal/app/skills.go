package app

import (
	"time"

	"github.com/pacelab/pacer/internal/skills"
)

// DemoSkills returns the built-in skill set used when no skill file is
// configured. Mastery levels are spread so the mix ratio, variation
// weights, and retrieval decisions all have something to bite on.
func DemoSkills(now time.Time) []skills.Skill {
	return []skills.Skill{
		{
			ID:            "fraction-addition",
			Name:          "Fraction Addition",
			BloomLevel:    skills.BloomApply,
			Difficulty:    0.5,
			PMastery:      0.45,
			LastPracticed: now.Add(-48 * time.Hour),
		},
		{
			ID:            "decimal-multiplication",
			Name:          "Decimal Multiplication",
			BloomLevel:    skills.BloomUnderstand,
			Difficulty:    0.6,
			PMastery:      0.3,
			LastPracticed: now.Add(-72 * time.Hour),
		},
		{
			ID:            "ratio-reasoning",
			Name:          "Ratio Reasoning",
			BloomLevel:    skills.BloomAnalyze,
			Difficulty:    0.7,
			PMastery:      0.75,
			LastPracticed: now.Add(-24 * time.Hour),
		},
	}
}

// DemoConcepts maps demo skill IDs to their key concepts for retrieval
// prompt generation.
func DemoConcepts() skills.KeyConcepts {
	return skills.KeyConcepts{
		"fraction-addition":      {"common denominators", "equivalent fractions"},
		"decimal-multiplication": {"place value", "decimal point placement"},
		"ratio-reasoning":        {"unit rates", "proportional relationships"},
	}
}
