package interleave

import "github.com/pacelab/pacer/internal/skills"

// MasteryWeightFloor keeps fully mastered skills in the mix. A skill at
// pMastery 1.0 still draws this share of the unnormalized weight, so
// review never drops to zero.
const MasteryWeightFloor = 0.3

// OptimalMixRatio returns per-skill sampling weights favoring
// under-mastered skills, normalized to sum to 1.
//
// The profile argument is accepted so callers can pass learner tuning
// through; PreferenceForChallenge and AttentionSpan do not influence
// the ratio yet.
func OptimalMixRatio(skillList []skills.Skill, profile skills.LearnerProfile) map[string]float64 {
	_ = profile

	ratios := make(map[string]float64, len(skillList))
	if len(skillList) == 0 {
		return ratios
	}

	total := 0.0
	for _, sk := range skillList {
		w := (1 - sk.PMastery) + MasteryWeightFloor
		ratios[sk.ID] = w
		total += w
	}
	for id := range ratios {
		ratios[id] /= total
	}
	return ratios
}
