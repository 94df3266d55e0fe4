package variation

import (
	"math/rand/v2"

	"github.com/pacelab/pacer/internal/skills"
)

// Type names a way of varying a question's presentation without
// changing what it assesses.
type Type string

const (
	// TypeContext reframes the question in a different real-world
	// setting.
	TypeContext Type = "context"

	// TypeFormat changes the answer format (free response, multiple
	// choice, fill-in).
	TypeFormat Type = "format"

	// TypeNumerical changes the numbers while keeping the structure.
	TypeNumerical Type = "numerical"

	// TypePhrasing rewords the question stem.
	TypePhrasing Type = "phrasing"
)

// AllTypes returns the variation types in weighting order.
func AllTypes() []Type {
	return []Type{TypeContext, TypeFormat, TypeNumerical, TypePhrasing}
}

// Selection weights. Contextual reframing pays off most for
// higher-order skills; numerical variation for hard skills; rephrasing
// only once the learner is past surface pattern-matching.
const (
	// RecentExclusionWindow is how many recently used types are
	// excluded from the draw.
	RecentExclusionWindow = 3

	ContextHighOrderWeight = 2.0
	NumericalHardWeight    = 1.5
	PhrasingMasteredWeight = 1.5
	BaseWeight             = 1.0
	NumericalHardThreshold = 0.5
	PhrasingMasteryMinimum = 0.7
)

// SelectType picks the next variation type for a question on the given
// skill, avoiding the types used most recently and weighting the rest
// by the skill's traits. The draw is uniform over cumulative weights,
// so it is reproducible under a seeded rng.
func SelectType(rng *rand.Rand, skill skills.Skill, previous []Type) Type {
	candidates := excludeRecent(AllTypes(), previous)

	total := 0.0
	weights := make([]float64, len(candidates))
	for i, t := range candidates {
		w := weightFor(t, skill)
		weights[i] = w
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}

// excludeRecent removes the last RecentExclusionWindow used types,
// unless doing so would leave nothing to pick from.
func excludeRecent(all []Type, previous []Type) []Type {
	if len(previous) == 0 {
		return all
	}
	recent := previous
	if len(recent) > RecentExclusionWindow {
		recent = recent[len(recent)-RecentExclusionWindow:]
	}

	excluded := make(map[Type]bool, len(recent))
	for _, t := range recent {
		excluded[t] = true
	}

	var out []Type
	for _, t := range all {
		if !excluded[t] {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

func weightFor(t Type, skill skills.Skill) float64 {
	switch t {
	case TypeContext:
		if skill.BloomLevel.HigherOrder() {
			return ContextHighOrderWeight
		}
	case TypeNumerical:
		if skill.Difficulty > NumericalHardThreshold {
			return NumericalHardWeight
		}
	case TypePhrasing:
		if skill.PMastery > PhrasingMasteryMinimum {
			return PhrasingMasteredWeight
		}
	}
	return BaseWeight
}
