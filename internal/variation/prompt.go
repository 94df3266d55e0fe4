package variation

import (
	"fmt"

	"github.com/pacelab/pacer/internal/skills"
)

// Prompt is a content request: the chosen variation type plus the
// instruction handed to the external content provider. The scheduler
// never writes question text itself.
type Prompt struct {
	Type        Type
	Instruction string
}

// Description returns a short human-readable explanation of what a
// variation type changes.
func (t Type) Description() string {
	switch t {
	case TypeContext:
		return "Same skill, different real-world context"
	case TypeFormat:
		return "Same skill, different answer format"
	case TypeNumerical:
		return "Same structure, different numbers"
	case TypePhrasing:
		return "Same question, different wording"
	default:
		return string(t)
	}
}

// BuildPrompt produces the rendering instruction for varying a question
// on the given skill. The instruction is a template for the content
// provider, not learner-facing text.
func BuildPrompt(skill skills.Skill, t Type) Prompt {
	var instruction string
	switch t {
	case TypeContext:
		instruction = fmt.Sprintf(
			"Rewrite the question for %q in a different real-world context. Keep the underlying skill, difficulty, and correct answer unchanged.",
			skill.Name)
	case TypeFormat:
		instruction = fmt.Sprintf(
			"Present the question for %q in a different answer format (switch between free response, multiple choice, or fill-in-the-blank). The assessed skill must not change.",
			skill.Name)
	case TypeNumerical:
		instruction = fmt.Sprintf(
			"Keep the structure of the question for %q but change every numeric value. Recompute the correct answer for the new values.",
			skill.Name)
	case TypePhrasing:
		instruction = fmt.Sprintf(
			"Reword the question for %q using different vocabulary and sentence structure. Meaning, difficulty, and answer must be identical.",
			skill.Name)
	}
	return Prompt{Type: t, Instruction: instruction}
}
