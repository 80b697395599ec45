// Package scoring reduces a session's answers into per-category and
// per-subsection totals and percentages.
package scoring

import (
	"math"

	"allyship/internal/model"
)

// Aggregate folds answers into a score summary in a single pass over the
// questionnaire. A question without an answer contributes 0 to raw scores and
// is not counted as answered. Max scores come from the questionnaire's
// configured rating scale, never from the answer count, so a section with no
// answers yields 0% rather than a division by zero.
//
// Aggregate is a pure function of its inputs; calling it twice over the same
// answers yields identical summaries.
func Aggregate(q *model.Questionnaire, answers map[string]model.Answer) *model.ScoreSummary {
	summary := &model.ScoreSummary{
		Completion: model.Completion{Total: q.Len()},
	}

	catIndex := make(map[string]int)
	subIndex := make(map[string]int)

	for _, spec := range q.Questions {
		ci, ok := catIndex[spec.Category]
		if !ok {
			ci = len(summary.Categories)
			catIndex[spec.Category] = ci
			summary.Categories = append(summary.Categories, model.CategoryTotals{Category: spec.Category})
		}

		subKey := spec.Category + "|" + spec.Section
		si, ok := subIndex[subKey]
		if !ok {
			si = len(summary.Subsections)
			subIndex[subKey] = si
			summary.Subsections = append(summary.Subsections, model.SubsectionTotals{
				Category: spec.Category,
				Section:  spec.Section,
			})
		}

		summary.Categories[ci].Max += q.MaxRating
		summary.Subsections[si].Max += q.MaxRating

		ans, answered := answers[spec.Key()]
		if !answered {
			continue
		}
		summary.Total += ans.Score
		summary.Categories[ci].Raw += ans.Score
		summary.Subsections[si].Raw += ans.Score
		summary.Completion.Answered++
	}

	for i := range summary.Categories {
		c := &summary.Categories[i]
		c.Percent = Percent(c.Raw, c.Max)
	}
	for i := range summary.Subsections {
		s := &summary.Subsections[i]
		s.Percent = Percent(s.Raw, s.Max)
	}
	summary.Completion.Percent = Percent(summary.Completion.Answered, summary.Completion.Total)

	return summary
}

// Percent is raw over max expressed 0-100, rounded. Max must be positive;
// the questionnaire compiler guarantees that for every scope.
func Percent(raw, max int) int {
	return int(math.Round(float64(raw) / float64(max) * 100))
}
