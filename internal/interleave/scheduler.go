package interleave

import (
	"fmt"
	"math/rand/v2"

	"github.com/pacelab/pacer/internal/skills"
)

// RetentionBoostScale converts the session's switch ratio into the
// estimated retention boost. Full interleaving (every adjacent pair a
// switch) maps to 0.3.
const RetentionBoostScale = 0.3

// poolEntry is one drawable question in the sampling arena.
type poolEntry struct {
	skillID   string
	skillName string
	index     int
}

// Generate builds an interleaved session of totalQuestions slots from
// questionsPerSkill questions of each skill.
//
// Slots are drawn one at a time with adjacency-avoiding sampling: the
// candidate set excludes the previously placed skill unless that would
// leave nothing to draw, in which case a repeat is forced and counted.
// The pool is held in a fixed arena with a used-index set, so draws
// never reorder it.
//
// totalQuestions <= 0 defaults to len(skills) * questionsPerSkill.
// An empty skill list yields an empty session.
func Generate(rng *rand.Rand, skillList []skills.Skill, questionsPerSkill, totalQuestions int) Session {
	session := Session{SkillMixRatio: map[string]float64{}}
	if len(skillList) == 0 || questionsPerSkill <= 0 {
		return session
	}

	pool := make([]poolEntry, 0, len(skillList)*questionsPerSkill)
	for _, sk := range skillList {
		for i := range questionsPerSkill {
			pool = append(pool, poolEntry{skillID: sk.ID, skillName: sk.Name, index: i})
		}
	}

	if totalQuestions <= 0 || totalQuestions > len(pool) {
		totalQuestions = len(pool)
	}

	used := make([]bool, len(pool))
	remaining := len(pool)
	prevSkill := ""

	questions := make([]Question, 0, totalQuestions)
	candidates := make([]int, 0, len(pool))

	for position := range totalQuestions {
		// Prefer entries that switch skill; fall back to the whole
		// remaining pool when only the previous skill is left.
		candidates = candidates[:0]
		for i, entry := range pool {
			if !used[i] && entry.skillID != prevSkill {
				candidates = append(candidates, i)
			}
		}
		forced := len(candidates) == 0
		if forced {
			for i := range pool {
				if !used[i] {
					candidates = append(candidates, i)
				}
			}
		}

		pick := candidates[rng.IntN(len(candidates))]
		used[pick] = true
		remaining--

		entry := pool[pick]
		q := Question{
			QuestionID:      fmt.Sprintf("%s-q%d", entry.skillID, entry.index+1),
			SkillID:         entry.skillID,
			SkillName:       entry.skillName,
			Position:        position,
			PreviousSkillID: prevSkill,
			IsSwitchPoint:   prevSkill != "" && entry.skillID != prevSkill,
		}
		questions = append(questions, q)

		if position > 0 {
			if entry.skillID == prevSkill {
				session.ForcedRepeats++
			} else {
				session.BlockingPrevented++
			}
		}
		prevSkill = entry.skillID
	}

	session.Questions = questions
	for _, q := range questions {
		session.SkillMixRatio[q.SkillID] += 1.0 / float64(len(questions))
	}

	if pairs := len(questions) - 1; pairs > 0 {
		switchRatio := float64(session.BlockingPrevented) / float64(pairs)
		session.EstimatedRetentionBoost = switchRatio * RetentionBoostScale
	}
	return session
}
