package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/pacelab/pacer/internal/interleave"
)

// QuestionRecord is one served question in the session transcript.
type QuestionRecord struct {
	Position      int
	SkillName     string
	Text          string
	Retrieval     bool
	VariationType string
	Correct       bool
	TimeMs        int64
}

// MasteryDelta is a skill's mastery estimate before and after a
// session.
type MasteryDelta struct {
	SkillName string
	Before    float64
	After     float64
}

// Summary aggregates one completed session.
type Summary struct {
	SessionID      string
	Plan           interleave.Session
	Questions      int
	Correct        int
	Variations     int
	RetrievalTests int
	BreaksTaken    int
	Duration       time.Duration
	FinalFatigue   float64
	Mastery        []MasteryDelta
	Transcript     []QuestionRecord
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))
)

// Render formats the summary for terminal output.
func (s *Summary) Render(verbose bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Session complete"))
	b.WriteString("\n\n")

	writeLine(&b, "Questions", fmt.Sprintf("%d (%d correct)", s.Questions, s.Correct))
	writeLine(&b, "Variations", fmt.Sprintf("%d", s.Variations))
	writeLine(&b, "Retrieval tests", fmt.Sprintf("%d", s.RetrievalTests))
	writeLine(&b, "Breaks taken", fmt.Sprintf("%d", s.BreaksTaken))
	writeLine(&b, "Duration", s.Duration.Round(time.Second).String())
	writeLine(&b, "Final fatigue", fmt.Sprintf("%.2f", s.FinalFatigue))
	writeLine(&b, "Switch points", fmt.Sprintf("%d", s.Plan.BlockingPrevented))
	writeLine(&b, "Retention boost", fmt.Sprintf("+%.0f%%", s.Plan.EstimatedRetentionBoost*100))
	if s.Plan.ForcedRepeats > 0 {
		writeLine(&b, "Forced repeats", fmt.Sprintf("%d", s.Plan.ForcedRepeats))
	}

	if len(s.Mastery) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Mastery"))
		b.WriteString("\n")
		for _, m := range s.Mastery {
			writeLine(&b, m.SkillName, fmt.Sprintf("%.2f → %.2f", m.Before, m.After))
		}
	}

	if verbose {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Transcript"))
		b.WriteString("\n")
		for _, rec := range s.Transcript {
			mark := correctStyle.Render("✓")
			if !rec.Correct {
				mark = wrongStyle.Render("✗")
			}
			kind := rec.VariationType
			if rec.Retrieval {
				kind = "retrieval"
			}
			b.WriteString(fmt.Sprintf(" %s %2d. [%s/%s] %s (%.1fs)\n",
				mark, rec.Position+1, rec.SkillName, kind, rec.Text,
				float64(rec.TimeMs)/1000))
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", label+":")),
		valueStyle.Render(value)))
}
