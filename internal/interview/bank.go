package interview

import (
	"fmt"

	"github.com/interview-prep/backend/internal/models"
)

// defaultCatalog is the static question catalog, grouped by difficulty tier.
// Each question carries a skill label used for report narration.
var defaultCatalog = map[models.Difficulty][]models.Question{
	models.DifficultyEasy: {
		{ID: "e1", Text: "What is the difference between a list and a tuple in Python?", Difficulty: models.DifficultyEasy, Skill: "Python"},
		{ID: "e2", Text: "Explain what REST API means.", Difficulty: models.DifficultyEasy, Skill: "API Design"},
		{ID: "e3", Text: "What is the purpose of version control (Git)?", Difficulty: models.DifficultyEasy, Skill: "DevOps"},
		{ID: "e4", Text: "Describe the difference between HTTP GET and POST.", Difficulty: models.DifficultyEasy, Skill: "Web"},
		{ID: "e5", Text: "What is a primary key in a database?", Difficulty: models.DifficultyEasy, Skill: "Database"},
	},
	models.DifficultyMedium: {
		{ID: "m1", Text: "Explain how Python's GIL affects multithreading.", Difficulty: models.DifficultyMedium, Skill: "Python"},
		{ID: "m2", Text: "Design a rate limiter for an API. What approaches would you consider?", Difficulty: models.DifficultyMedium, Skill: "System Design"},
		{ID: "m3", Text: "How would you optimize a slow SQL query?", Difficulty: models.DifficultyMedium, Skill: "Database"},
		{ID: "m4", Text: "Explain the concept of eventual consistency in distributed systems.", Difficulty: models.DifficultyMedium, Skill: "System Design"},
		{ID: "m5", Text: "What are the tradeoffs between microservices and monoliths?", Difficulty: models.DifficultyMedium, Skill: "Architecture"},
	},
	models.DifficultyHard: {
		{ID: "h1", Text: "Design a distributed cache with strong consistency guarantees.", Difficulty: models.DifficultyHard, Skill: "System Design"},
		{ID: "h2", Text: "How would you implement a consensus algorithm like Raft?", Difficulty: models.DifficultyHard, Skill: "Distributed Systems"},
		{ID: "h3", Text: "Design a real-time collaborative editing system (like Google Docs).", Difficulty: models.DifficultyHard, Skill: "System Design"},
		{ID: "h4", Text: "Explain how to handle Byzantine faults in a distributed system.", Difficulty: models.DifficultyHard, Skill: "Distributed Systems"},
		{ID: "h5", Text: "Design a load balancer that can handle millions of requests per second.", Difficulty: models.DifficultyHard, Skill: "System Design"},
	},
}

// Bank is the read-only question catalog. It is fixed for the process
// lifetime and safe to share across sessions without synchronization.
type Bank struct {
	byTier map[models.Difficulty][]models.Question
}

// NewBank returns a bank seeded with the default catalog.
func NewBank() *Bank {
	return NewBankWith(defaultCatalog)
}

// NewBankWith returns a bank over the given catalog. Tests use it to build
// small banks with known contents.
func NewBankWith(byTier map[models.Difficulty][]models.Question) *Bank {
	return &Bank{byTier: byTier}
}

// QuestionsFor returns all questions in the given tier, in catalog order.
// Callers must not mutate the returned slice.
func (b *Bank) QuestionsFor(tier models.Difficulty) []models.Question {
	return b.byTier[tier]
}

// Size returns the total number of questions across all tiers.
func (b *Bank) Size() int {
	total := 0
	for _, qs := range b.byTier {
		total += len(qs)
	}
	return total
}

// Validate reports a configuration error when any tier is empty. An empty
// tier is a startup-time fatal condition, not a per-request fault.
func (b *Bank) Validate() error {
	for _, tier := range models.DifficultyOrder {
		if len(b.byTier[tier]) == 0 {
			return fmt.Errorf("question bank has no %s questions", tier)
		}
	}
	return nil
}
