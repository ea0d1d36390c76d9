package interview

import (
	"github.com/interview-prep/backend/internal/models"
)

// Selector picks the next question for a session. It prefers the session's
// current tier, falls back to other tiers in easy→hard order when the current
// tier is exhausted, and only repeats questions once the entire bank has been
// used up for the session.
type Selector struct {
	bank *Bank
	rng  *Rand
}

func NewSelector(bank *Bank, rng *Rand) *Selector {
	return &Selector{bank: bank, rng: rng}
}

// NextQuestion returns one question not yet issued to the session, records it
// in UsedQuestionIDs and increments QuestionCount. The returned copy has its
// Difficulty stamped with the session's current tier, even when the selector
// fell back to a question from another tier.
func (s *Selector) NextQuestion(session *models.Session) models.Question {
	candidates := s.unused(session, session.Difficulty)

	if len(candidates) == 0 {
		for _, tier := range models.DifficultyOrder {
			if tierCandidates := s.unused(session, tier); len(tierCandidates) > 0 {
				candidates = tierCandidates
				break
			}
		}
	}

	if len(candidates) == 0 {
		// Whole bank exhausted: allow repeats from the easy tier.
		candidates = s.bank.QuestionsFor(models.DifficultyEasy)
	}

	question := candidates[s.rng.Intn(len(candidates))]
	session.UsedQuestionIDs[question.ID] = true
	session.QuestionCount++

	question.Difficulty = session.Difficulty
	return question
}

func (s *Selector) unused(session *models.Session, tier models.Difficulty) []models.Question {
	var out []models.Question
	for _, q := range s.bank.QuestionsFor(tier) {
		if !session.UsedQuestionIDs[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
