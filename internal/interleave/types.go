package interleave

// Question is one slot in an interleaved session sequence.
type Question struct {
	// QuestionID identifies the slot for the content provider,
	// derived from the skill and its per-skill index.
	QuestionID string

	SkillID   string
	SkillName string

	// Position is the zero-based slot index in the session.
	Position int

	// PreviousSkillID is the skill of the preceding slot, empty for
	// the first slot.
	PreviousSkillID string

	// IsSwitchPoint is true when this slot changes skill relative to
	// the previous one. Switch points are where the interleaving
	// benefit accrues.
	IsSwitchPoint bool
}

// Session is a fully built interleaved question sequence. It is
// immutable once generated.
type Session struct {
	Questions []Question

	// SkillMixRatio maps each skill to its fraction of the session's
	// slots.
	SkillMixRatio map[string]float64

	// BlockingPrevented counts the adjacent repeats the sampler
	// successfully avoided.
	BlockingPrevented int

	// ForcedRepeats counts adjacent repeats that could not be avoided
	// because only one skill remained in the pool.
	ForcedRepeats int

	// EstimatedRetentionBoost is a bounded linear proxy (0-0.3) for
	// the long-term benefit of the achieved switch ratio. It is a
	// heuristic, not a calibrated prediction.
	EstimatedRetentionBoost float64
}
