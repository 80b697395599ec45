package model

// QuestionSpec is one question of the assessment. Its identity is the
// combination of all three fields; Key() is used as the lookup key for
// answers.
type QuestionSpec struct {
	Category string `json:"category"`
	Section  string `json:"section"`
	Text     string `json:"text"`
}

// Key returns the identity key used to index answers.
func (q QuestionSpec) Key() string {
	return q.Category + "|" + q.Section + "|" + q.Text
}

// Questionnaire is the compiled, immutable question set plus the configured
// rating scale. Built once at startup by the questionnaire package; never
// mutated afterwards.
type Questionnaire struct {
	MaxRating int
	Questions []QuestionSpec

	byKey map[string]int
}

// NewQuestionnaire indexes an already-validated question list. Callers go
// through questionnaire.Compile, which enforces identity uniqueness and the
// scale range before this runs.
func NewQuestionnaire(maxRating int, questions []QuestionSpec) *Questionnaire {
	byKey := make(map[string]int, len(questions))
	for i, q := range questions {
		byKey[q.Key()] = i
	}
	return &Questionnaire{
		MaxRating: maxRating,
		Questions: questions,
		byKey:     byKey,
	}
}

// Lookup finds a question by identity key.
func (q *Questionnaire) Lookup(key string) (QuestionSpec, bool) {
	i, ok := q.byKey[key]
	if !ok {
		return QuestionSpec{}, false
	}
	return q.Questions[i], true
}

// Len returns the total number of questions.
func (q *Questionnaire) Len() int {
	return len(q.Questions)
}
