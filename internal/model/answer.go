package model

import "time"

// Answer is a respondent's score for one question. At most one answer exists
// per question per session; answering again overwrites.
type Answer struct {
	Score      int       `json:"score"`
	AnsweredAt time.Time `json:"answeredAt"`
}
