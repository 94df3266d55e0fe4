package retrieval

// Retrieval-strength rubric. The additive terms reward fast, confident,
// unaided correct recall; hints subtract regardless of outcome.
const (
	CorrectBase   = 0.6
	IncorrectBase = 0.2

	FastRecallMs     = 10_000
	ModerateRecallMs = 30_000
	FastRecallBonus  = 0.15
	SlowRecallBonus  = 0.10

	HighConfidence      = 4
	SomeConfidence      = 3
	HighConfidenceBonus = 0.15
	SomeConfidenceBonus = 0.05

	HintPenalty = 0.10
)

// Strength scores a completed retrieval attempt on [0, 1].
// confidenceRating is the learner's self-report on a 1-5 scale.
func Strength(responseTimeMs int64, isCorrect bool, confidenceRating, hintsUsed int) float64 {
	score := IncorrectBase
	if isCorrect {
		score = CorrectBase

		switch {
		case responseTimeMs < FastRecallMs:
			score += FastRecallBonus
		case responseTimeMs < ModerateRecallMs:
			score += SlowRecallBonus
		}

		switch {
		case confidenceRating >= HighConfidence:
			score += HighConfidenceBonus
		case confidenceRating >= SomeConfidence:
			score += SomeConfidenceBonus
		}
	}

	score -= HintPenalty * float64(hintsUsed)

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
