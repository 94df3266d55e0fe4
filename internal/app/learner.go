package app

import (
	"math/rand/v2"

	"github.com/pacelab/pacer/internal/skills"
)

// Simulated learner model. Response times grow with difficulty and
// fatigue; correctness tracks mastery and erodes under fatigue.
const (
	baseAnswerMs       = 4000
	difficultyAnswerMs = 8000
	fatigueSlowFactor  = 0.8
	answerNoise        = 0.3

	baseCorrectChance    = 0.35
	masteryCorrectWeight = 0.55
	fatigueCorrectDrag   = 0.2
)

// simAnswer is one synthetic learner response.
type simAnswer struct {
	TimeMs     int64
	Correct    bool
	Confidence int
	HintsUsed  int
}

// simLearner produces deterministic synthetic answers from a seeded rng.
type simLearner struct {
	rng *rand.Rand
}

func newSimLearner(rng *rand.Rand) *simLearner {
	return &simLearner{rng: rng}
}

// targetAnswerMs is the expected unfatigued response time for a skill.
func targetAnswerMs(sk skills.Skill) int64 {
	return int64(float64(baseAnswerMs) + sk.Difficulty*difficultyAnswerMs)
}

// answer simulates one response to a question on the given skill at the
// given fatigue level.
func (l *simLearner) answer(sk skills.Skill, fatigueLevel float64) simAnswer {
	ms := float64(targetAnswerMs(sk))
	ms *= 1 + fatigueLevel*fatigueSlowFactor
	ms *= 1 + answerNoise*(2*l.rng.Float64()-1)

	pCorrect := baseCorrectChance + sk.PMastery*masteryCorrectWeight - fatigueLevel*fatigueCorrectDrag
	if pCorrect < 0.05 {
		pCorrect = 0.05
	}
	if pCorrect > 0.95 {
		pCorrect = 0.95
	}
	correct := l.rng.Float64() < pCorrect

	confidence := 1 + l.rng.IntN(2)
	if correct {
		confidence = 3 + l.rng.IntN(3)
	}

	hints := 0
	if !correct && l.rng.Float64() < 0.4 {
		hints = 1 + l.rng.IntN(2)
	}

	return simAnswer{
		TimeMs:     int64(ms),
		Correct:    correct,
		Confidence: confidence,
		HintsUsed:  hints,
	}
}
