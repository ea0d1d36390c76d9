package interview

import (
	"testing"

	"github.com/interview-prep/backend/internal/models"
)

func newTestSession(difficulty models.Difficulty) *models.Session {
	return &models.Session{
		ID:              "test-session",
		Difficulty:      difficulty,
		Scores:          []int{},
		UsedQuestionIDs: make(map[string]bool),
	}
}

func smallBank() *Bank {
	return NewBankWith(map[models.Difficulty][]models.Question{
		models.DifficultyEasy: {
			{ID: "e1", Text: "easy one", Difficulty: models.DifficultyEasy, Skill: "A"},
			{ID: "e2", Text: "easy two", Difficulty: models.DifficultyEasy, Skill: "B"},
		},
		models.DifficultyMedium: {
			{ID: "m1", Text: "medium one", Difficulty: models.DifficultyMedium, Skill: "A"},
		},
		models.DifficultyHard: {
			{ID: "h1", Text: "hard one", Difficulty: models.DifficultyHard, Skill: "C"},
		},
	})
}

func TestNextQuestionNoRepeats(t *testing.T) {
	bank := NewBank()
	sel := NewSelector(bank, NewRand(1))
	sess := newTestSession(models.DifficultyMedium)

	seen := make(map[string]bool)
	for i := 0; i < bank.Size(); i++ {
		q := sel.NextQuestion(sess)
		if seen[q.ID] {
			t.Fatalf("question %s repeated before bank exhaustion", q.ID)
		}
		seen[q.ID] = true
	}

	if sess.QuestionCount != bank.Size() {
		t.Errorf("QuestionCount = %d, want %d", sess.QuestionCount, bank.Size())
	}
}

func TestNextQuestionTierFallback(t *testing.T) {
	sel := NewSelector(smallBank(), NewRand(2))
	sess := newTestSession(models.DifficultyMedium)
	sess.UsedQuestionIDs["m1"] = true

	// Medium is exhausted; fallback scans easy first.
	q := sel.NextQuestion(sess)
	if q.ID != "e1" && q.ID != "e2" {
		t.Errorf("fallback picked %s, want a question from the easy tier", q.ID)
	}
}

func TestNextQuestionStampsCurrentTier(t *testing.T) {
	sel := NewSelector(smallBank(), NewRand(3))
	sess := newTestSession(models.DifficultyHard)
	sess.UsedQuestionIDs["h1"] = true

	// The bank record comes from another tier, but the served copy carries
	// the session's current tier.
	q := sel.NextQuestion(sess)
	if q.Difficulty != models.DifficultyHard {
		t.Errorf("served difficulty = %s, want %s", q.Difficulty, models.DifficultyHard)
	}
}

func TestNextQuestionExhaustionRepeatsFromEasy(t *testing.T) {
	bank := smallBank()
	sel := NewSelector(bank, NewRand(4))
	sess := newTestSession(models.DifficultyMedium)
	for _, tier := range models.DifficultyOrder {
		for _, q := range bank.QuestionsFor(tier) {
			sess.UsedQuestionIDs[q.ID] = true
		}
	}

	q := sel.NextQuestion(sess)
	if q.ID != "e1" && q.ID != "e2" {
		t.Errorf("exhausted bank picked %s, want a repeat from the easy tier", q.ID)
	}
	if sess.QuestionCount != 1 {
		t.Errorf("QuestionCount = %d, want 1", sess.QuestionCount)
	}
}

func TestNextQuestionDoesNotMutateBank(t *testing.T) {
	bank := smallBank()
	sel := NewSelector(bank, NewRand(5))
	sess := newTestSession(models.DifficultyHard)

	sel.NextQuestion(sess)

	for _, tier := range models.DifficultyOrder {
		for _, q := range bank.QuestionsFor(tier) {
			if q.Difficulty != tier {
				t.Errorf("bank record %s mutated to tier %s", q.ID, q.Difficulty)
			}
		}
	}
}
