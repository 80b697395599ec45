// Package questionnaire compiles the static assessment definition into the
// immutable question set the rest of the service consumes. All configuration
// defects (bad scale, duplicate questions, empty sections) are caught here,
// before any scoring runs.
package questionnaire

import (
	"fmt"

	"allyship/internal/model"
)

// Group is one category with its ordered sections.
type Group struct {
	Category string    `json:"category"`
	Sections []Section `json:"sections"`
}

// Section is a named cluster of questions sharing a behavioral theme.
type Section struct {
	Name      string   `json:"name"`
	Page      int      `json:"page"`
	Questions []string `json:"questions"`
}

// Build compiles the allyship questionnaire with the configured rating scale.
func Build(maxRating int) (*model.Questionnaire, error) {
	return Compile(maxRating, Definition()...)
}

// Compile validates and flattens groups into a questionnaire. It is the only
// constructor the service uses; a questionnaire that compiles is safe for the
// aggregator (every section non-empty, every identity unique, max scores
// derived from a single scale value).
func Compile(maxRating int, groups ...Group) (*model.Questionnaire, error) {
	if maxRating != 4 && maxRating != 5 {
		return nil, fmt.Errorf("unsupported rating scale max %d (must be 4 or 5)", maxRating)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("questionnaire has no categories")
	}

	var questions []model.QuestionSpec
	seen := make(map[string]bool)

	for _, g := range groups {
		if len(g.Sections) == 0 {
			return nil, fmt.Errorf("category %q has no sections", g.Category)
		}
		for _, sec := range g.Sections {
			if len(sec.Questions) == 0 {
				return nil, fmt.Errorf("section %q in category %q has no questions", sec.Name, g.Category)
			}
			for _, text := range sec.Questions {
				spec := model.QuestionSpec{
					Category: g.Category,
					Section:  sec.Name,
					Text:     text,
				}
				if seen[spec.Key()] {
					return nil, fmt.Errorf("duplicate question %q in section %q", text, sec.Name)
				}
				seen[spec.Key()] = true
				questions = append(questions, spec)
			}
		}
	}

	return model.NewQuestionnaire(maxRating, questions), nil
}
