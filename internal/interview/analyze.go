package interview

import (
	"strings"

	"github.com/interview-prep/backend/internal/models"
)

// skillVocabulary is the fixed vocabulary matched against resume and job
// description text. Matching is case-insensitive substring search.
var skillVocabulary = []string{
	"python", "javascript", "react", "sql", "aws",
	"docker", "kubernetes", "system design",
}

var (
	fallbackSkills = []string{"Python", "System Design"}

	seniorRequirements  = []string{"5+ years experience", "System design expertise", "Mentorship ability"}
	juniorRequirements  = []string{"Basic programming", "Willingness to learn", "Team collaboration"}
	defaultRequirements = []string{"Relevant experience", "Technical proficiency", "Problem solving"}

	defaultFocusAreas = []string{"System Design", "Coding Interview", "Behavioral"}
)

// Analyze runs the keyword-matching profile heuristic over a resume and job
// description. It is stateless and involves no session.
func Analyze(resumeText, jdText string) models.AnalyzeResponse {
	resumeLower := strings.ToLower(resumeText)
	jdLower := strings.ToLower(jdText)

	var skills []string
	for _, skill := range skillVocabulary {
		if strings.Contains(resumeLower, skill) || strings.Contains(jdLower, skill) {
			skills = append(skills, displaySkill(skill))
		}
	}
	if len(skills) == 0 {
		skills = fallbackSkills
	}

	var requirements []string
	switch {
	case strings.Contains(jdLower, "senior"):
		requirements = seniorRequirements
	case strings.Contains(jdLower, "junior"):
		requirements = juniorRequirements
	default:
		requirements = defaultRequirements
	}

	return models.AnalyzeResponse{
		Skills:           skills,
		RoleRequirements: requirements,
		FocusAreas:       defaultFocusAreas,
	}
}

// displaySkill title-cases a vocabulary entry for display. Acronyms keep
// their canonical form.
func displaySkill(skill string) string {
	if skill == "aws" {
		return "AWS"
	}
	words := strings.Fields(skill)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
