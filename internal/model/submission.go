package model

import "time"

// Submission is the archived snapshot of a finished assessment. Only the
// final aggregated scores are stored; the session itself expires with its
// cache entry.
type Submission struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	SessionID   string       `json:"sessionId" bson:"sessionId"`
	Summary     ScoreSummary `json:"summary" bson:"summary"`
	SubmittedAt time.Time    `json:"submittedAt" bson:"submittedAt"`
}
