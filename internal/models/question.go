package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyOrder lists the tiers from easiest to hardest. Tier fallback and
// difficulty transitions both walk this slice.
var DifficultyOrder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Index returns the position of d in DifficultyOrder, or -1 for an unknown tier.
func (d Difficulty) Index() int {
	for i, tier := range DifficultyOrder {
		if tier == d {
			return i
		}
	}
	return -1
}

// Question is an immutable bank record. The Difficulty field on a served copy
// is stamped with the session's current tier, which may differ from the bank
// tier when the selector fell back to another tier.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Skill      string     `json:"skill"`
}
