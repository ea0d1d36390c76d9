package interview

import (
	"fmt"

	"github.com/interview-prep/backend/internal/models"
)

// Hiring readiness verdicts, bucketed by readiness score.
const (
	VerdictStrongHire = "Strong Hire"
	VerdictHire       = "Hire"
	VerdictBorderline = "Borderline"
	VerdictNoHire     = "No Hire"
)

// ReadinessScore is the integer average (floor division) of all scores so
// far, 0 when no answers have been recorded. It is recomputed fresh from the
// score history on every call rather than kept as a running total.
func ReadinessScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return sum / len(scores)
}

// Verdict buckets a readiness score into a hiring recommendation.
func Verdict(readiness int) string {
	switch {
	case readiness >= 80:
		return VerdictStrongHire
	case readiness >= 60:
		return VerdictHire
	case readiness >= 40:
		return VerdictBorderline
	default:
		return VerdictNoHire
	}
}

// BuildReport aggregates a session's score history into the final readiness
// report. The per-skill breakdown is simulated: each skill gets the readiness
// score plus an independent jitter, clamped to [0,100]. Jitter ranges differ
// by skill.
func BuildReport(scores []int, rng *Rand) models.Report {
	readiness := ReadinessScore(scores)

	skillBreakdown := map[string]int{
		"Python":        clamp(readiness+rng.Between(-10, 10), 0, 100),
		"System Design": clamp(readiness+rng.Between(-15, 5), 0, 100),
		"Database":      clamp(readiness+rng.Between(-10, 10), 0, 100),
	}

	var strengths, weaknesses []string
	switch {
	case readiness >= 70:
		strengths = []string{"Strong technical knowledge", "Good problem-solving approach"}
		weaknesses = []string{"Could improve on time management"}
	case readiness >= 50:
		strengths = []string{"Basic understanding of concepts"}
		weaknesses = []string{"Need deeper technical knowledge", "Practice more coding problems"}
	default:
		strengths = []string{"Willingness to attempt questions"}
		weaknesses = []string{"Fundamental gaps in knowledge", "Need significant practice", "Study core concepts"}
	}

	actionable := []string{
		fmt.Sprintf("Focus on improving areas with scores below %d", readiness),
		"Practice more timed interviews",
		"Review system design fundamentals",
	}

	return models.Report{
		ReadinessScore:     readiness,
		SkillBreakdown:     skillBreakdown,
		Strengths:          strengths,
		Weaknesses:         weaknesses,
		ActionableFeedback: actionable,
		HiringReadiness:    Verdict(readiness),
	}
}
