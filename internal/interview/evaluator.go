package interview

import (
	"strings"

	"github.com/interview-prep/backend/internal/models"
)

// Feedback messages appended based on the final base score.
const (
	feedbackExcellent = "Excellent answer with good depth."
	feedbackGood      = "Good answer, but could use more detail."
	feedbackWeak      = "Answer needs significant improvement."
	feedbackOvertime  = "Try to answer within the time limit."
)

// AnswerEvaluator scores a free-text answer. The default implementation is a
// length- and randomness-based heuristic; a real scorer can be substituted
// behind this interface as long as the default behavior stays available.
type AnswerEvaluator interface {
	Evaluate(answerText string, timeTakenSec, timeLimitSec int, difficulty models.Difficulty) models.Evaluation
}

// Evaluator is the default heuristic scorer. It is pure given its random
// source: answer length picks a base-score range, the difficulty tier shifts
// it, and exceeding the time limit applies a 20% penalty.
type Evaluator struct {
	rng *Rand
}

func NewEvaluator(rng *Rand) *Evaluator {
	return &Evaluator{rng: rng}
}

// Evaluate returns a score in [0,100], a five-axis breakdown and at least one
// feedback string. It never fails.
func (e *Evaluator) Evaluate(answerText string, timeTakenSec, timeLimitSec int, difficulty models.Difficulty) models.Evaluation {
	answerLen := len(strings.TrimSpace(answerText))

	var base int
	switch {
	case answerLen < 20:
		base = e.rng.Between(30, 50)
	case answerLen < 100:
		base = e.rng.Between(50, 75)
	default:
		base = e.rng.Between(60, 95)
	}

	// Harder tiers are graded more generously, easier tiers more strictly.
	switch difficulty {
	case models.DifficultyHard:
		base = clamp(base+5, 0, 100)
	case models.DifficultyEasy:
		base = clamp(base-5, 0, 100)
	}

	timeEfficiency := 100
	if timeTakenSec > timeLimitSec {
		base = int(float64(base) * 0.8)
		timeEfficiency = int(float64(timeLimitSec) / float64(timeTakenSec) * 100)
		if timeEfficiency < 0 {
			timeEfficiency = 0
		}
	}

	breakdown := models.Breakdown{
		Accuracy:       clamp(base+e.rng.Between(-10, 10), 0, 100),
		Clarity:        clamp(base+e.rng.Between(-10, 10), 0, 100),
		Depth:          clamp(base+e.rng.Between(-10, 10), 0, 100),
		Relevance:      clamp(base+e.rng.Between(-10, 10), 0, 100),
		TimeEfficiency: clamp(timeEfficiency, 0, 100),
	}

	var feedback []string
	switch {
	case base >= 75:
		feedback = append(feedback, feedbackExcellent)
	case base >= 50:
		feedback = append(feedback, feedbackGood)
	default:
		feedback = append(feedback, feedbackWeak)
	}
	if timeEfficiency < 100 {
		feedback = append(feedback, feedbackOvertime)
	}

	return models.Evaluation{
		Score:     base,
		Breakdown: breakdown,
		Feedback:  feedback,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
