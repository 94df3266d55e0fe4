package retrieval

import "fmt"

// Attempt-count tiers for prompt escalation.
const (
	// ApplicationTierAttempts is the attempt count at which prompts
	// move from basic recall to application.
	ApplicationTierAttempts = 3

	// ConnectionTierAttempts is the attempt count at which prompts
	// move to connection and elaboration.
	ConnectionTierAttempts = 6
)

// PromptSource lazily yields recall-prompt templates for one skill,
// escalating in cognitive demand with the learner's attempt count and
// finishing with one probe per key concept. It is finite and
// non-restartable: once drained it stays drained.
type PromptSource struct {
	tier     []string
	concepts []string
	skill    string
	pos      int
}

// Prompts builds a prompt source for the skill. The templates are
// requests to the content provider, not finished questions.
func Prompts(skillName string, keyConcepts []string, previousAttempts int) *PromptSource {
	var tier []string
	switch {
	case previousAttempts < ApplicationTierAttempts:
		tier = []string{
			fmt.Sprintf("Without looking anything up, explain %s in your own words.", skillName),
			fmt.Sprintf("Write down everything you remember about %s.", skillName),
		}
	case previousAttempts < ConnectionTierAttempts:
		tier = []string{
			fmt.Sprintf("Describe a real situation where you would use %s.", skillName),
			fmt.Sprintf("From memory, work through one example of %s step by step.", skillName),
		}
	default:
		tier = []string{
			fmt.Sprintf("How does %s connect to other skills you have learned?", skillName),
			fmt.Sprintf("Teach %s to someone seeing it for the first time, including why it matters.", skillName),
		}
	}

	return &PromptSource{
		tier:     tier,
		concepts: keyConcepts,
		skill:    skillName,
	}
}

// Next returns the next prompt template, or false when the source is
// exhausted. Templates are materialized one at a time.
func (p *PromptSource) Next() (string, bool) {
	if p.pos < len(p.tier) {
		prompt := p.tier[p.pos]
		p.pos++
		return prompt, true
	}
	conceptIdx := p.pos - len(p.tier)
	if conceptIdx < len(p.concepts) {
		p.pos++
		return fmt.Sprintf("What do you remember about %s?", p.concepts[conceptIdx]), true
	}
	return "", false
}

// Remaining reports how many prompts have not been drawn yet.
func (p *PromptSource) Remaining() int {
	return len(p.tier) + len(p.concepts) - p.pos
}
