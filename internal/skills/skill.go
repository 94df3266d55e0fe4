package skills

import "time"

// BloomLevel classifies the cognitive demand of a skill on Bloom's
// taxonomy, from Remember (1) to Create (6).
type BloomLevel int

const (
	BloomRemember   BloomLevel = 1
	BloomUnderstand BloomLevel = 2
	BloomApply      BloomLevel = 3
	BloomAnalyze    BloomLevel = 4
	BloomEvaluate   BloomLevel = 5
	BloomCreate     BloomLevel = 6
)

// Label returns a human-readable name for a Bloom level.
func (b BloomLevel) Label() string {
	switch b {
	case BloomRemember:
		return "Remember"
	case BloomUnderstand:
		return "Understand"
	case BloomApply:
		return "Apply"
	case BloomAnalyze:
		return "Analyze"
	case BloomEvaluate:
		return "Evaluate"
	case BloomCreate:
		return "Create"
	default:
		return "Unknown"
	}
}

// HigherOrder reports whether the level is Apply or above. Higher-order
// skills benefit more from contextual variation.
func (b BloomLevel) HigherOrder() bool {
	return b >= BloomApply
}

// Skill is a single node in the learning graph as seen by the scheduler.
// The graph subsystem owns these; the scheduler reads them and never
// writes back.
type Skill struct {
	ID         string
	Name       string
	BloomLevel BloomLevel

	// Difficulty is the intrinsic difficulty estimate, 0.0-1.0.
	Difficulty float64

	// PMastery is the current mastery estimate, 0.0-1.0.
	// Zero when no estimate exists yet.
	PMastery float64

	// LastPracticed is when the learner last saw this skill.
	// Zero value means never practiced.
	LastPracticed time.Time

	// InterleaveCount tracks how many interleaved sessions have
	// included this skill.
	InterleaveCount int
}

// KeyConcepts optionally names the concepts a retrieval prompt should
// probe for this skill. Supplied by the content subsystem.
type KeyConcepts map[string][]string

// LearnerProfile carries learner-level tuning inputs.
//
// PreferenceForChallenge and AttentionSpan are accepted so callers can
// start recording them, but no scheduling branch consumes them yet.
// They are forward-compatibility hooks, not dead weight to strip.
type LearnerProfile struct {
	// PreferenceForChallenge is 0.0-1.0; higher means the learner
	// opts into harder material.
	PreferenceForChallenge float64

	// AttentionSpan is the learner's typical focused span in minutes.
	AttentionSpan float64
}
