package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pacelab/pacer/internal/interleave"
	"github.com/pacelab/pacer/internal/mastery"
	"github.com/pacelab/pacer/internal/skills"
	"github.com/pacelab/pacer/internal/store"
	"github.com/pacelab/pacer/internal/telemetry"
)

// minEffectivenessSamples is the answer count below which the
// early-versus-late comparison is noise.
const minEffectivenessSamples = 6

// SkillReport combines a skill's stored aggregates with its
// interleaving effectiveness verdict.
type SkillReport struct {
	Skill            skills.Skill
	Stats            store.SkillStats
	EstimatedMastery float64
	Effectiveness    *interleave.Effectiveness
}

// StatsReport is the full cross-session view rendered by the stats
// command.
type StatsReport struct {
	Skills []SkillReport
	Breaks store.BreakStats
}

// BuildStats assembles the report from event history. Effectiveness is
// computed by splitting each skill's answer history in half and
// comparing accuracy, credited for the elapsed span.
func BuildStats(ctx context.Context, events store.EventRepo, skillSet []skills.Skill) (*StatsReport, error) {
	report := &StatsReport{}

	for _, sk := range skillSet {
		stats, err := events.SkillStats(ctx, sk.ID)
		if err != nil {
			return nil, fmt.Errorf("stats for %s: %w", sk.ID, err)
		}

		sr := SkillReport{Skill: sk, Stats: *stats}

		history, span, err := events.CorrectnessHistory(ctx, sk.ID)
		if err != nil {
			return nil, fmt.Errorf("history for %s: %w", sk.ID, err)
		}
		// Stored history has no per-answer target times, so the speed
		// component stays neutral here.
		tr := mastery.NewTracker()
		for _, correct := range history {
			tr.Observe(correct, 0, 0)
		}
		sr.EstimatedMastery = tr.Estimate(sk.PMastery)

		if len(history) >= minEffectivenessSamples {
			half := len(history) / 2
			early := telemetry.Accuracy(history[:half])
			late := telemetry.Accuracy(history[half:])
			delayDays := span.Hours() / 24
			eff := interleave.TrackEffectiveness(early, late, delayDays)
			sr.Effectiveness = &eff
		}

		report.Skills = append(report.Skills, sr)
	}

	breaks, err := events.BreakStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("break stats: %w", err)
	}
	report.Breaks = *breaks

	return report, nil
}

// Render formats the report for terminal output.
func (r *StatsReport) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Practice statistics"))
	b.WriteString("\n\n")

	for _, sr := range r.Skills {
		b.WriteString(valueStyle.Render(sr.Skill.Name))
		b.WriteString("\n")
		if sr.Stats.Attempts == 0 {
			b.WriteString(labelStyle.Render("  no attempts yet"))
			b.WriteString("\n\n")
			continue
		}
		writeLine(&b, "  Attempts", fmt.Sprintf("%d (%.0f%% correct)", sr.Stats.Attempts, sr.Stats.Accuracy*100))
		writeLine(&b, "  Mastery", fmt.Sprintf("%.2f", sr.EstimatedMastery))
		if sr.Stats.RetrievalTests > 0 {
			writeLine(&b, "  Retrieval", fmt.Sprintf("%d tests, avg strength %.2f", sr.Stats.RetrievalTests, sr.Stats.AvgStrength))
		}
		if !sr.Stats.LastAnswered.IsZero() {
			writeLine(&b, "  Last seen", sr.Stats.LastAnswered.Format(time.DateTime))
		}
		if sr.Effectiveness != nil {
			writeLine(&b, "  Interleaving", fmt.Sprintf("%s (%+.0f%%)", sr.Effectiveness.Verdict, sr.Effectiveness.Improvement*100))
			b.WriteString(labelStyle.Render("    " + sr.Effectiveness.Recommendation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(valueStyle.Render("Breaks"))
	b.WriteString("\n")
	writeLine(&b, "  Taken", fmt.Sprintf("%d (%d skipped)", r.Breaks.Taken, r.Breaks.Skipped))
	if r.Breaks.MeasuredBreaks > 0 {
		writeLine(&b, "  Avg recovery", fmt.Sprintf("%.2f over %d measured", r.Breaks.AvgRecovery, r.Breaks.MeasuredBreaks))
	}
	for bt, n := range r.Breaks.ByType {
		writeLine(&b, "  "+bt, fmt.Sprintf("%d", n))
	}

	return b.String()
}
