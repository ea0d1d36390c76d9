package models

// Report is the final readiness verdict for a finished (or in-progress) session.
type Report struct {
	ReadinessScore     int            `json:"readiness_score_0_100"`
	SkillBreakdown     map[string]int `json:"skill_breakdown"`
	Strengths          []string       `json:"strengths"`
	Weaknesses         []string       `json:"weaknesses"`
	ActionableFeedback []string       `json:"actionable_feedback"`
	HiringReadiness    string         `json:"hiring_readiness"`
}
